// Package domain contains the core business entities of the gym backend:
// persons, trainers, gyms and memberships. Entities validate themselves and
// report failures as ValidationError values wrapping ErrValidation.
package domain

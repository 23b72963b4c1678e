// Package events lets services announce committed entity changes without
// knowing who reacts to them.
//
// The primary components are:
// - EntityEvent: a create, update or delete of a persisted entity
// - EventHandler: interface for components that react to events
// - EventEmitter: interface for components that publish events
package events

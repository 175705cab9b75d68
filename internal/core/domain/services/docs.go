// Package services provides domain services that operate on the service-order
// model without belonging to a single aggregate root.
//
// The package includes:
//   - MessageRenderer: renders notification templates into outbound message bodies
//   - RenderReceipt: renders the plain-text pickup receipt for an order
//
// Both are pure: no I/O, no shared state, deterministic output for the same input.
package services

// Package kernel contains the shared value objects of the domain model:
// the UUID wrapper, the typed identifiers (OrderID, OrderItemID, ProductID,
// CustomerID, TenantID), and Money.
//
// All types here are immutable, validated at construction, and carry no
// behavior beyond equality, rendering, and currency-checked arithmetic.
// Aggregates in sibling packages build on these primitives and never accept
// raw uuids or bare numeric amounts.
package kernel

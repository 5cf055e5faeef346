// Package outbox models the transactional outbox: domain events captured as
// messages in the same transaction as the aggregate change, later published
// to the message bus by a relay job. This keeps "saved" and "published"
// consistent without distributed transactions.
package outbox

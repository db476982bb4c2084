// SPDX-License-Identifier: MIT

package network

// QueueLen exposes the size of the greedy view for invariant checks.
func QueueLen(n *Node) int { return n.queue.Len() }

// PoolLen exposes the size of the random-access view for invariant checks.
func PoolLen(n *Node) int { return len(n.pool) }

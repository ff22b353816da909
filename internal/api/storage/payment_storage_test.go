package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingPaymentsQueryGroupsByType(t *testing.T) {
	// The review queue is grouped by payment type, then worked oldest
	// first within each group.
	assert.Contains(t, pendingPaymentsQuery, "ORDER BY pay.payment_type, pay.created_at")
}

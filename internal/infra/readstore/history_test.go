//go:build unit

package readstore

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemHistoryQuery(t *testing.T) {
	itemID := uuid.New()

	query, args, err := itemHistory(itemID, 21).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(query, "UNION ALL"))
	assert.Contains(t, query, `ORDER BY "h"."created_at" DESC, "h"."id" DESC`)
	assert.Contains(t, query, "LIMIT $4")
	// one item filter per history table
	require.Len(t, args, 4)
	assert.Equal(t, []any{itemID.String(), itemID.String(), itemID.String()}, args[:3])
}

package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// AssessmentCache holds batch evaluation results for their TTL. Nothing in
// this service persists fitness output beyond this cache.
type AssessmentCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type batchCacheKeyInput struct {
	EmployeeID string `json:"employee_id"`
	MinScore   int    `json:"min_score"`
}

// BatchEvaluationCacheKey hashes the canonical batch inputs. The employee id
// must already be canonical so "00042" and "42" share an entry.
func BatchEvaluationCacheKey(employeeID string, minScore int) string {
	b, _ := json.Marshal(batchCacheKeyInput{EmployeeID: employeeID, MinScore: minScore})
	sum := sha256.Sum256(b)
	return "fitness:batch:" + hex.EncodeToString(sum[:])
}

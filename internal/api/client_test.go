package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drdash/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, &session.Session{Token: "test-token"})
}

func TestRecoveryStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/disaster-recovery/status", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"recovery_plans":           3,
				"active_plans":             2,
				"recovery_time_objective":  4,
				"recovery_point_objective": 1,
				"backup_frequency":         24,
				"retention_period":         30,
				"last_backup":              "2026-08-26T02:00:00",
			},
		})
	})

	status, err := c.RecoveryStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalPlans)
	assert.Equal(t, 2, status.ActivePlans)
	assert.Equal(t, 4, status.RecoveryTimeObjective)
	assert.Equal(t, "2026-08-26T02:00:00", status.LastBackup)
	assert.Empty(t, status.LastRecovery)
}

func TestRecoveryPlans(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/disaster-recovery/plans", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"name": "prod-dr", "status": "active", "created_at": "2026-01-01T00:00:00", "test_count": 2},
				{"name": "staging-dr", "status": "inactive", "created_at": "2026-02-01T00:00:00", "last_tested": "2026-03-01T00:00:00", "test_count": 5},
			},
		})
	})

	plans, err := c.RecoveryPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "prod-dr", plans[0].Name)
	assert.Equal(t, "active", plans[0].Status)
	assert.Empty(t, plans[0].LastTested)
	assert.Equal(t, 5, plans[1].TestCount)
}

func TestRecoveryStatus_EnvelopeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "data": nil})
	})
	_, err := c.RecoveryStatus(context.Background())
	assert.Error(t, err)
}

func TestRecoveryStatus_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.RecoveryStatus(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestCreatePlan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/disaster-recovery/plans/create", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "prod-dr", body["plan_name"])
		cfg, ok := body["plan_config"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(30), cfg["backup_retention"])
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"success":   true,
				"plan_name": "prod-dr",
				"message":   "Recovery plan 'prod-dr' created successfully",
			},
		})
	})

	out, err := c.CreatePlan(context.Background(), "prod-dr", map[string]interface{}{"backup_retention": 30})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "prod-dr", out.PlanName)
	assert.Contains(t, out.Message, "created successfully")
}

func TestExecutePlan_ServerFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/disaster-recovery/plans/prod-dr/execute", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"data":    map[string]interface{}{"error": "backup in progress"},
		})
	})

	out, err := c.ExecutePlan(context.Background(), "prod-dr")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "backup in progress", out.Err)
}

func TestTestPlan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/disaster-recovery/plans/prod-dr/test", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"success": true, "plan_name": "prod-dr"},
		})
	})

	out, err := c.TestPlan(context.Background(), "prod-dr")
	require.NoError(t, err)
	assert.True(t, out.Success)
}

func TestDeletePlan(t *testing.T) {
	var gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		assert.Equal(t, "/disaster-recovery/plans/old-plan", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"message": "Recovery plan 'old-plan' deleted successfully"},
		})
	})

	out, err := c.DeletePlan(context.Background(), "old-plan")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.True(t, out.Success)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 50*time.Millisecond, nil)
	_, err := c.RecoveryStatus(context.Background())
	assert.Error(t, err, "a stalled call must settle with an error")
}

func TestClient_NoSessionNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second, nil)
	plans, err := c.RecoveryPlans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}

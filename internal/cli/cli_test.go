package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgdesh/bank-api/internal/command"
	"github.com/sgdesh/bank-api/internal/config"
	"github.com/sgdesh/bank-api/internal/events"
)

func memoryConfig() *config.Config {
	cfg := config.Default()
	cfg.Store = config.StoreMemory
	cfg.Redis.Addr = ""
	return cfg
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "events"}, names)

	tail, _, err := root.Find([]string{"events", "tail"})
	require.NoError(t, err)
	assert.Equal(t, "tail", tail.Name())
	assert.Equal(t, events.LedgerEventsStream, tail.Flag("stream").DefValue)
}

func TestEventsTailRejectsUnknownStream(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"events", "tail", "--stream", "payments.events"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stream")
}

func TestMigrateRefusesMemoryStore(t *testing.T) {
	t.Setenv("STORE", config.StoreMemory)
	root := NewRootCommand()
	root.SetArgs([]string{"migrate"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate needs the postgres store")
}

func TestAppServesOnMemoryStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := newApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer a.Close()

	router := a.router(command.ApproverFunc(func() bool { return true }))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Server is Up"}`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(`{"firstName":"Lata","lastName":"Das","email":"lata@example.com","mobileNumber":"9988776655"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestServeStopsOnCancel(t *testing.T) {
	cfg := memoryConfig()
	cfg.Port = "0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, false) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("serve did not return after cancel")
	}
}

func TestFormatEvent(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	line := formatEvent(events.LedgerEventsStream, events.Event{
		Type:      events.BalanceUpdated,
		Timestamp: ts,
		Data:      map[string]any{"bankAccountId": 7},
	})
	assert.Equal(t, `2024-05-01T12:00:00Z ledger.events balance.updated {"bankAccountId":7}`, line)
}

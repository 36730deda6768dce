package statusservice

import (
	"context"
	"testing"

	"github.com/go-petr/super-app/internal/auditlog"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/internal/ledger"
	"github.com/go-petr/super-app/internal/pluginservice"
	"github.com/go-petr/super-app/internal/searchservice"
	"github.com/go-petr/super-app/pkg/passpkg"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	ctx := context.Background()

	store, err := ledger.New(passpkg.Plain{})
	require.NoError(t, err)

	_, err = store.Create(ctx, "alice", "secret", domain.RoleUser)
	require.NoError(t, err)

	info := domain.AppInfo{Name: "Super App", Version: "1.0.0", Engine: "core"}
	features := map[string]bool{"AI": true, "GAMES": false}

	s := New(
		info,
		features,
		searchservice.New(false, nil),
		store,
		pluginservice.New(pluginservice.BuiltinPlugins(), auditlog.New()),
	)

	features["AI"] = false

	want := domain.Status{
		App:      info,
		Mode:     domain.ModeOffline,
		Features: map[string]bool{"AI": true, "GAMES": false},
		Users:    1,
		Plugins:  []string{"ai_enhancer", "plugin_example"},
	}

	if diff := cmp.Diff(want, s.Status(ctx)); diff != "" {
		t.Errorf("Status() mismatch (-want +got):\n%s", diff)
	}
}

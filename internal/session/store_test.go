package session

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/mock"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) (*Store, *mock.MockSessionSlotRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	slots := mock.NewMockSessionSlotRepository(ctrl)
	return NewStore(slots, logger.Nop()), slots
}

var emily = models.User{ID: 1, Username: "emilys", FirstName: "Emily", LastName: "Johnson", Email: "emily.johnson@x.dummyjson.com"}

func TestNewStore_StartsInitializing(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	assert.Equal(t, models.SessionInitializing, snap.Status)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.Profile)

	_, ok := s.GetToken()
	assert.False(t, ok)
}

func TestStore_SetToken(t *testing.T) {
	ctx := context.Background()

	t.Run("stores in memory and slot without authenticating", func(t *testing.T) {
		s, slots := newTestStore(t)
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)

		require.NoError(t, s.SetToken(ctx, " tok "))

		token, ok := s.GetToken()
		assert.True(t, ok)
		assert.Equal(t, "tok", token)
		assert.Equal(t, models.SessionInitializing, s.Snapshot().Status)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		s, _ := newTestStore(t)
		assert.ErrorIs(t, s.SetToken(ctx, "   "), ErrEmptyToken)
	})

	t.Run("slot failure keeps memory", func(t *testing.T) {
		s, slots := newTestStore(t)
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(errors.New("disk full"))

		err := s.SetToken(ctx, "tok")
		require.Error(t, err)

		token, ok := s.GetToken()
		assert.True(t, ok)
		assert.Equal(t, "tok", token)
	})
}

func TestStore_SetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("without token", func(t *testing.T) {
		s, _ := newTestStore(t)

		assert.ErrorIs(t, s.SetProfile(emily), ErrNoToken)
		assert.Nil(t, s.Snapshot().Profile)
	})

	t.Run("token then profile authenticates", func(t *testing.T) {
		s, slots := newTestStore(t)
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)

		require.NoError(t, s.SetToken(ctx, "tok"))
		require.NoError(t, s.SetProfile(emily))

		snap := s.Snapshot()
		assert.Equal(t, models.SessionAuthenticated, snap.Status)
		require.NotNil(t, snap.Profile)
		assert.Equal(t, "Emily", snap.Profile.FirstName)
	})
}

func TestStore_SetAuthenticated(t *testing.T) {
	ctx := context.Background()
	s, slots := newTestStore(t)
	slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)

	updates, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.SetAuthenticated(ctx, "tok", emily))

	got := <-updates
	assert.Equal(t, models.SessionAuthenticated, got.Status)
	assert.Equal(t, "tok", got.Token)
	require.NotNil(t, got.Profile)
	assert.Equal(t, emily.Email, got.Profile.Email)

	select {
	case extra := <-updates:
		t.Fatalf("unexpected second update: %+v", extra)
	default:
	}
}

func TestStore_SetAuthenticated_EmptyToken(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.SetAuthenticated(context.Background(), "", emily), ErrEmptyToken)
	assert.Equal(t, models.SessionInitializing, s.Snapshot().Status)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("removes memory and slot", func(t *testing.T) {
		s, slots := newTestStore(t)
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)
		slots.EXPECT().Delete(ctx, store.TokenSlotKey).Return(nil)

		require.NoError(t, s.SetAuthenticated(ctx, "tok", emily))
		s.Clear(ctx)

		snap := s.Snapshot()
		assert.Equal(t, models.SessionAnonymous, snap.Status)
		assert.Empty(t, snap.Token)
		assert.Nil(t, snap.Profile)
	})

	t.Run("slot failure still clears memory", func(t *testing.T) {
		s, slots := newTestStore(t)
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)
		slots.EXPECT().Delete(ctx, store.TokenSlotKey).Return(errors.New("locked"))

		require.NoError(t, s.SetAuthenticated(ctx, "tok", emily))
		s.Clear(ctx)

		_, ok := s.GetToken()
		assert.False(t, ok)
		assert.Equal(t, models.SessionAnonymous, s.Snapshot().Status)
	})
}

func TestStore_Markers(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous then initializing", func(t *testing.T) {
		s, _ := newTestStore(t)

		s.MarkAnonymous()
		assert.Equal(t, models.SessionAnonymous, s.Snapshot().Status)

		s.MarkInitializing()
		assert.Equal(t, models.SessionInitializing, s.Snapshot().Status)
	})

	t.Run("initializing does not downgrade authenticated", func(t *testing.T) {
		s, slots := newTestStore(t)
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)

		require.NoError(t, s.SetAuthenticated(ctx, "tok", emily))
		s.MarkInitializing()

		assert.Equal(t, models.SessionAuthenticated, s.Snapshot().Status)
	})

	t.Run("anonymous drops memory only", func(t *testing.T) {
		s, slots := newTestStore(t)
		slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)

		require.NoError(t, s.SetToken(ctx, "tok"))
		s.MarkAnonymous()

		_, ok := s.GetToken()
		assert.False(t, ok)
	})
}

func TestStore_LoadPersistedToken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		value     string
		err       error
		wantToken string
		wantOK    bool
		wantErr   bool
	}{
		{name: "present", value: "tok", wantToken: "tok", wantOK: true},
		{name: "blank", value: "  ", wantOK: false},
		{name: "missing", err: store.ErrSlotNotFound, wantOK: false},
		{name: "failure", err: errors.New("io"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, slots := newTestStore(t)
			slots.EXPECT().Get(ctx, store.TokenSlotKey).Return(tt.value, tt.err)

			token, ok, err := s.LoadPersistedToken(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestStore_Subscribe(t *testing.T) {
	t.Run("slow subscriber sees newest value", func(t *testing.T) {
		s, _ := newTestStore(t)
		updates, cancel := s.Subscribe()
		defer cancel()

		s.MarkAnonymous()
		s.MarkInitializing()
		s.MarkAnonymous()

		got := <-updates
		assert.Equal(t, models.SessionAnonymous, got.Status)

		select {
		case extra := <-updates:
			t.Fatalf("unexpected buffered update: %+v", extra)
		default:
		}
	})

	t.Run("every subscriber notified", func(t *testing.T) {
		s, _ := newTestStore(t)
		a, cancelA := s.Subscribe()
		defer cancelA()
		b, cancelB := s.Subscribe()
		defer cancelB()

		s.MarkAnonymous()

		assert.Equal(t, models.SessionAnonymous, (<-a).Status)
		assert.Equal(t, models.SessionAnonymous, (<-b).Status)
	})

	t.Run("cancel closes channel and is idempotent", func(t *testing.T) {
		s, _ := newTestStore(t)
		updates, cancel := s.Subscribe()

		cancel()
		cancel()

		_, open := <-updates
		assert.False(t, open)

		s.MarkAnonymous()
	})
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	s, slots := newTestStore(t)
	slots.EXPECT().Set(ctx, store.TokenSlotKey, "tok").Return(nil)
	require.NoError(t, s.SetAuthenticated(ctx, "tok", emily))

	snap := s.Snapshot()
	snap.Profile.FirstName = "Changed"

	assert.Equal(t, "Emily", s.Snapshot().Profile.FirstName)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clash-augmenter/internal/adapter"
	"github.com/MKhiriev/clash-augmenter/internal/app"
	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/mock"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/internal/validators"
	"github.com/MKhiriev/clash-augmenter/models"
)

// newTestClientServices builds the remote service layer over a mock adapter.
func newTestClientServices(t *testing.T, ctrl *gomock.Controller, cfg config.App) (*Services, *mock.MockAugmentAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockAugmentAdapter(ctrl)

	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	svcs, err := NewClientServices(mockAdapter, cfg, logger.Nop())
	require.NoError(t, err)

	return svcs, mockAdapter
}

func TestNewClientServices_RejectsMalformedGroupMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, err := NewClientServices(mock.NewMockAugmentAdapter(ctrl), config.App{Version: "1.0.0", GroupMerge: "sideways"}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownMergeDirection)
	assert.Nil(t, svcs)
}

// ── Augment ──────────────────────────────────────────────────────────────────

func TestClientAugmentService_Augment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestClientServices(t, ctrl, config.App{Preset: presets.Regional})
	ctx := context.Background()

	cfg := decodeConfig(t, "proxies: [p1]\nrules: ['A,b,c']")
	answer := decodeConfig(t, "proxies: [p1]\nrules: ['MATCH,DIRECT', 'A,b,c']")

	mockAdapter.EXPECT().
		Augment(ctx, cfg, adapter.AugmentParams{Profile: "home", Preset: presets.RegionalPriority, GroupMerge: models.MergeAppend}).
		Return(answer, nil)

	got, err := svcs.AugmentService.Augment(ctx, cfg, "home",
		WithPreset(presets.RegionalPriority),
		WithGroupMerge(models.MergeAppend),
	)

	require.NoError(t, err)
	assert.Same(t, cfg, got, "the caller's document is updated in place")
	assert.Equal(t, []any{"MATCH,DIRECT", "A,b,c"}, got.Rules())
}

func TestClientAugmentService_Augment_ConfiguredDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestClientServices(t, ctrl, config.App{Preset: presets.Regional, GroupMerge: "prepend"})
	ctx := context.Background()
	cfg := decodeConfig(t, "proxies: [p1]")

	mockAdapter.EXPECT().
		Augment(ctx, cfg, adapter.AugmentParams{Preset: presets.Regional, GroupMerge: models.MergePrepend}).
		Return(cfg, nil)

	_, err := svcs.AugmentService.Augment(ctx, cfg, "")
	require.NoError(t, err)
}

func TestClientAugmentService_Augment_ValidatedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestClientServices(t, ctrl, config.App{})
	mockAdapter.EXPECT().Augment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svcs.AugmentService.Augment(context.Background(), decodeConfig(t, "proxies: []"), "empty")
	assert.ErrorIs(t, err, validators.ErrNoProxiesFound)
}

func TestClientAugmentService_Augment_RemoteErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "no proxies on server",
			err:     fmt.Errorf("%w: %s", adapter.ErrUnprocessableEntity, app.MsgNoProxiesFound),
			wantErr: validators.ErrNoProxiesFound,
		},
		{
			name:    "unknown preset",
			err:     fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUnknownPreset),
			wantErr: presets.ErrUnknownPreset,
		},
		{
			name:    "transport failure",
			err:     errors.New("augment request: connection refused"),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svcs, mockAdapter := newTestClientServices(t, ctrl, config.App{})
			mockAdapter.EXPECT().Augment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			cfg := decodeConfig(t, "proxies: [p1]")
			got, err := svcs.AugmentService.Augment(context.Background(), cfg, "home")

			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, []string{"proxies"}, cfg.Keys(), "document must stay untouched on failure")
		})
	}
}

// ── Presets ──────────────────────────────────────────────────────────────────

func TestClientPresetService_ListPresets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestClientServices(t, ctrl, config.App{})
	ctx := context.Background()
	want := []models.PresetSummary{{Name: presets.Regional, GroupMerge: models.MergeAppend}}

	mockAdapter.EXPECT().ListPresets(ctx).Return(want, nil)

	got, err := svcs.PresetService.ListPresets(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientPresetService_ListPresets_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestClientServices(t, ctrl, config.App{})
	mockAdapter.EXPECT().ListPresets(gomock.Any()).Return(nil, adapter.ErrInternalServerError)

	got, err := svcs.PresetService.ListPresets(context.Background())
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Nil(t, got)
}

func TestClientPresetService_GetPreset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter := newTestClientServices(t, ctrl, config.App{})
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().GetPreset(ctx, presets.Regional).Return(models.Preset{Name: presets.Regional}, nil),
		mockAdapter.EXPECT().GetPreset(ctx, "nope").Return(models.Preset{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUnknownPreset)),
	)

	got, err := svcs.PresetService.GetPreset(ctx, presets.Regional)
	require.NoError(t, err)
	assert.Equal(t, presets.Regional, got.Name)

	_, err = svcs.PresetService.GetPreset(ctx, "nope")
	assert.ErrorIs(t, err, presets.ErrUnknownPreset)
}

func TestNewClientServices_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewClientServices(mock.NewMockAugmentAdapter(ctrl), config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

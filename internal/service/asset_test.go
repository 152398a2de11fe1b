package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/landsight/prospect-api/internal/domain/model"
	"github.com/landsight/prospect-api/internal/mocks"
)

func TestAssetService_Create_FormatsPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockAssetRepository(ctrl)
	svc := NewAssetService(AssetServiceOptions{AssetRepo: repo})

	raw := "214-555-0142"
	repo.EXPECT().
		Create(ctx, gomock.AssignableToTypeOf(&model.CreateAssetRequest{})).
		DoAndReturn(func(_ context.Context, req *model.CreateAssetRequest) (*model.Asset, error) {
			require.NotNil(t, req.Phone)
			assert.Equal(t, "(214) 555-0142", *req.Phone)
			return &model.Asset{ID: "asset-1", Phone: req.Phone}, nil
		})

	got, err := svc.Create(ctx, &model.CreateAssetRequest{Lat: 32.78, Lng: -96.80, Phone: &raw})
	require.NoError(t, err)
	assert.Equal(t, "asset-1", got.ID)
}

func TestAssetService_Create_DropsUnformattablePhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockAssetRepository(ctrl)
	svc := NewAssetService(AssetServiceOptions{AssetRepo: repo})

	noDigits := "call me"
	repo.EXPECT().
		Create(ctx, gomock.AssignableToTypeOf(&model.CreateAssetRequest{})).
		DoAndReturn(func(_ context.Context, req *model.CreateAssetRequest) (*model.Asset, error) {
			assert.Nil(t, req.Phone)
			return &model.Asset{ID: "asset-2"}, nil
		})

	_, err := svc.Create(ctx, &model.CreateAssetRequest{Lat: 32.78, Lng: -96.80, Phone: &noDigits})
	require.NoError(t, err)
}

func TestAssetService_List_NormalizesOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockAssetRepository(ctrl)
	svc := NewAssetService(AssetServiceOptions{AssetRepo: repo})

	blank := "   "
	repo.EXPECT().
		List(ctx, gomock.AssignableToTypeOf(model.AssetsListOptions{})).
		DoAndReturn(func(_ context.Context, opts model.AssetsListOptions) ([]*model.Asset, error) {
			assert.Equal(t, 200, opts.Limit)
			assert.Equal(t, 0, opts.Offset)
			assert.Nil(t, opts.Submarket)
			return nil, nil
		})

	_, err := svc.List(ctx, model.AssetsListOptions{Offset: -3, Submarket: &blank})
	require.NoError(t, err)
}

func TestAssetService_Delete_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockAssetRepository(ctrl)
	svc := NewAssetService(AssetServiceOptions{AssetRepo: repo})

	repo.EXPECT().Delete(ctx, "asset-1").Return(true, nil)

	ok, err := svc.Delete(ctx, "asset-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

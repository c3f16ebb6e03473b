package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo-banner/models"
	"logo-banner/repository"
)

type fakeRasterizer struct {
	png    []byte
	err    error
	html   string
	calls  int
	width  int
	height int
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, html string, width, height int) ([]byte, error) {
	f.calls++
	f.html = html
	f.width, f.height = width, height
	return f.png, f.err
}

type fakeDrive struct {
	names []string
	err   error
}

func (f *fakeDrive) UploadBanner(ctx context.Context, name string, png []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.names = append(f.names, name)
	return "drive-file-1", nil
}

func newTestExportService(t *testing.T, rasterizer RasterizerInterface, drive DriveUploaderInterface) (*ExportService, *repository.MemoryExportStore) {
	t.Helper()
	renderer, err := NewBannerRenderer(1584, 396)
	require.NoError(t, err)

	store := repository.NewMemoryExportStore(0)
	t.Cleanup(func() { store.Close() })

	svc := NewExportService(renderer, rasterizer, store, drive, ExportSettings{
		Filename: "banner.png",
		Timeout:  5 * time.Second,
		TTL:      time.Minute,
		BaseURL:  "http://localhost:8080/",
	})
	return svc, store
}

func testView() BannerView {
	return BannerView{Items: testItems()[:3], Width: 100, Background: DefaultBackground}
}

func TestExportService_Export(t *testing.T) {
	rasterizer := &fakeRasterizer{png: pngOfSize(t, 1600, 400)}
	svc, _ := newTestExportService(t, rasterizer, nil)
	notifier := &recordingNotifier{}

	result, err := svc.Export(context.Background(), testView(), notifier)
	require.NoError(t, err)

	assert.Equal(t, "banner.png", result.Filename)
	assert.Equal(t, 1584, result.Width)
	assert.Equal(t, 396, result.Height)
	assert.Equal(t, "http://localhost:8080/exports/"+result.ExportID, result.URL)
	assert.Empty(t, result.DriveID)
	assert.Contains(t, rasterizer.html, `data-id="docker"`)
	assert.Equal(t, []int{1584, 396}, []int{rasterizer.width, rasterizer.height}, "canvas size comes from the renderer")

	stored, err := svc.Get(context.Background(), result.ExportID)
	require.NoError(t, err)
	assert.Len(t, stored, result.Bytes)

	notifications := notifier.All()
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationSuccess, notifications[0].Type)
}

func TestExportService_FailureNotifiesOnce(t *testing.T) {
	rasterizer := &fakeRasterizer{err: errors.New("chrome crashed")}
	svc, store := newTestExportService(t, rasterizer, nil)
	notifier := &recordingNotifier{}

	result, err := svc.Export(context.Background(), testView(), notifier)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrExportFailed)
	assert.ErrorContains(t, err, "chrome crashed")

	// No retry
	assert.Equal(t, 1, rasterizer.calls)
	assert.Zero(t, store.Purge())

	notifications := notifier.All()
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationError, notifications[0].Type)
}

func TestExportService_InvalidImage(t *testing.T) {
	svc, _ := newTestExportService(t, &fakeRasterizer{png: []byte("garbage")}, nil)

	_, err := svc.Export(context.Background(), testView(), &recordingNotifier{})
	assert.ErrorIs(t, err, models.ErrExportFailed)
}

func TestExportService_InvalidViewIsNotRasterized(t *testing.T) {
	rasterizer := &fakeRasterizer{}
	svc, _ := newTestExportService(t, rasterizer, nil)

	view := testView()
	view.Width = 200
	_, err := svc.Export(context.Background(), view, &recordingNotifier{})
	assert.ErrorIs(t, err, models.ErrExportFailed)
	assert.ErrorIs(t, err, models.ErrInvalidWidth)
	assert.Zero(t, rasterizer.calls)
}

func TestExportService_DriveUpload(t *testing.T) {
	drive := &fakeDrive{}
	svc, _ := newTestExportService(t, &fakeRasterizer{png: pngOfSize(t, 1584, 396)}, drive)

	result, err := svc.Export(context.Background(), testView(), &recordingNotifier{})
	require.NoError(t, err)
	assert.Equal(t, "drive-file-1", result.DriveID)
	assert.Equal(t, []string{"banner-" + result.ExportID + ".png"}, drive.names)
}

func TestExportService_DriveFailureKeepsExport(t *testing.T) {
	drive := &fakeDrive{err: errors.New("quota exceeded")}
	svc, _ := newTestExportService(t, &fakeRasterizer{png: pngOfSize(t, 1584, 396)}, drive)

	result, err := svc.Export(context.Background(), testView(), &recordingNotifier{})
	require.NoError(t, err)
	assert.Empty(t, result.DriveID)

	_, err = svc.Get(context.Background(), result.ExportID)
	assert.NoError(t, err)
}

func TestExportName(t *testing.T) {
	assert.Equal(t, "banner-x.png", exportName("banner.png", "x"))
	assert.Equal(t, "banner-x", exportName("banner", "x"))
	assert.Equal(t, ".hidden-x", exportName(".hidden", "x"))
}

package converter

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"autoscribe/internal/app/model"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncWidth), " ✓ ",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

// Abort stops the bar where it is, leaving it on screen
func (pb *ProgressBar) Abort() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Abort(false)
	}
}

func (pb *ProgressBar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}

// ProgressAwareConverter advances one bar per finished input of a batch.
// The progress container is single use: run one batch, then Close.
type ProgressAwareConverter struct {
	*Converter
	progressManager *ProgressManager
}

func NewProgressAwareConverter(converter *Converter, config ProgressConfig) *ProgressAwareConverter {
	return &ProgressAwareConverter{
		Converter:       converter,
		progressManager: NewProgressManager(config),
	}
}

func (pac *ProgressAwareConverter) Close() {
	if pac.progressManager != nil {
		pac.progressManager.Shutdown()
	}
}

func (pac *ProgressAwareConverter) ConvertFilesWithProgress(ctx context.Context, paths []string, opts Options) (*model.Job, error) {
	descriptors, err := describeAll(paths)
	if err != nil {
		return nil, err
	}
	return pac.runWithProgress(ctx, descriptors, opts)
}

func (pac *ProgressAwareConverter) ConvertDirWithProgress(ctx context.Context, dir, extension string, count int, opts Options) (*model.Job, error) {
	descriptors, err := pac.listDir(dir, extension, count)
	if err != nil {
		return nil, err
	}
	return pac.runWithProgress(ctx, descriptors, opts)
}

func (pac *ProgressAwareConverter) runWithProgress(ctx context.Context, descriptors []model.FileDescriptor, opts Options) (*model.Job, error) {
	progressBar := pac.progressManager.CreateBar(len(descriptors), FormatProgressDescription("Transcribing", len(descriptors)))

	j, err := pac.run(ctx, descriptors, opts, func(int, model.JobResult) {
		progressBar.Increment()
	})
	if err != nil {
		progressBar.Abort()
	} else {
		progressBar.Complete()
	}
	pac.progressManager.Wait()
	return j, err
}

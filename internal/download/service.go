package download

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vidfetch/vidfetch-bot/internal/engine"
	"github.com/vidfetch/vidfetch-bot/internal/model"
	"github.com/vidfetch/vidfetch-bot/internal/plan"
	"github.com/vidfetch/vidfetch-bot/internal/platform"
)

// Request describes one acquisition job.
type Request struct {
	URL      string
	Platform model.Platform
	Format   model.FormatType
	Quality  model.Quality
}

// Outcome is the terminal report of one job. Exactly one of Result and Err
// is set. The receiver owns the scratch directory and must call Cleanup once
// the outcome has been acted on.
type Outcome struct {
	Result *model.DownloadResult
	Err    error

	workDir string
	logger  *zap.Logger
}

// Cleanup removes the job's scratch directory and everything in it. Failures
// are logged, never surfaced. Safe to call more than once.
func (o *Outcome) Cleanup() {
	if o.workDir == "" {
		return
	}
	if err := os.RemoveAll(o.workDir); err != nil {
		o.logger.Warn("failed to remove scratch directory",
			zap.String("dir", o.workDir), zap.Error(err))
	}
}

// Service handles download operations. Each job runs in its own goroutine
// with its own scratch subdirectory, so jobs never contend for files and the
// newest-file fallback stays within one job's artifacts.
type Service struct {
	engine      engine.Engine
	planner     plan.Planner
	scratchRoot string
	timeout     time.Duration
	logger      *zap.Logger

	tasks      map[string]*model.DownloadTask
	tasksMutex sync.RWMutex
}

// NewService creates a new download service. timeout bounds each job's
// engine invocation; zero disables the deadline. A nil logger disables
// logging.
func NewService(eng engine.Engine, planner plan.Planner, scratchRoot string, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine:      eng,
		planner:     planner,
		scratchRoot: scratchRoot,
		timeout:     timeout,
		logger:      logger,
		tasks:       make(map[string]*model.DownloadTask),
	}
}

// Start launches a job and returns a channel that delivers its single
// Outcome. The channel is closed after delivery. The caller is not blocked
// while the engine runs.
func (s *Service) Start(ctx context.Context, req Request) <-chan Outcome {
	task := &model.DownloadTask{
		ID:        uuid.New().String(),
		URL:       req.URL,
		Platform:  req.Platform,
		Format:    req.Format,
		Quality:   req.Quality,
		Status:    model.StatusPending,
		StartedAt: time.Now(),
	}
	task.WorkDir = filepath.Join(s.scratchRoot, task.ID)
	s.register(task)

	outcomes := make(chan Outcome, 1)
	go func() {
		defer close(outcomes)
		outcomes <- s.run(ctx, task)
	}()
	return outcomes
}

// GetTask returns an in-flight task by ID.
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// ActiveCount reports how many jobs are currently in flight.
func (s *Service) ActiveCount() int {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return len(s.tasks)
}

func (s *Service) run(ctx context.Context, task *model.DownloadTask) Outcome {
	outcome := Outcome{workDir: task.WorkDir, logger: s.logger}

	if err := platform.CreateDirectoryIfNotExists(task.WorkDir); err != nil {
		outcome.Err = model.Failure(model.FailDownload, task.Platform, err)
		s.finish(task, &outcome)
		return outcome
	}

	dp := s.planner.Build(task.WorkDir, task.Platform, task.Format, task.Quality)

	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Info("download started",
		zap.String("task_id", task.ID),
		zap.String("platform", task.Platform.String()),
		zap.String("format", string(task.Format)),
		zap.String("quality", string(task.Quality)))

	s.transition(task, model.StatusDownloading)
	meta, err := s.engine.Download(runCtx, task.URL, dp)
	if err != nil {
		outcome.Err = engine.ClassifyFailure(task.Platform, err)
		s.finish(task, &outcome)
		return outcome
	}

	s.transition(task, model.StatusResolving)
	artifact, err := s.resolve(dp, meta, task.WorkDir)
	if err != nil {
		outcome.Err = err
		s.finish(task, &outcome)
		return outcome
	}

	info, err := os.Stat(artifact)
	if err != nil {
		outcome.Err = model.Failure(model.FailArtifactNotFound, task.Platform, err)
		s.finish(task, &outcome)
		return outcome
	}

	outcome.Result = &model.DownloadResult{
		ArtifactPath: artifact,
		DisplayName:  filepath.Base(artifact),
		Size:         info.Size(),
		Meta:         meta,
	}
	s.finish(task, &outcome)
	return outcome
}

// resolve locates the finished artifact. Audio post-processing renames the
// file after the engine computed its prediction, so the predicted extension
// is swapped first; when the predicted path still does not exist the newest
// file in the job's scratch directory is taken instead.
func (s *Service) resolve(dp model.DownloadPlan, meta model.Metadata, workDir string) (string, error) {
	predicted := s.engine.PredictPath(dp, meta)
	if dp.ExtractAudio {
		predicted = platform.ReplaceExtension(predicted, dp.AudioFormat)
	}

	if _, err := os.Stat(predicted); err == nil {
		return predicted, nil
	}

	s.logger.Debug("predicted artifact missing, scanning scratch directory",
		zap.String("predicted", predicted))

	newest, err := platform.NewestFile(workDir)
	if err != nil {
		return "", model.Failure(model.FailArtifactNotFound, dp.Platform, err)
	}
	return newest, nil
}

func (s *Service) register(task *model.DownloadTask) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.tasks[task.ID] = task
}

func (s *Service) transition(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	task.Status = status
}

// finish records the terminal state and drops the task from the in-flight
// registry. The registry only tracks active jobs so it cannot grow without
// bound.
func (s *Service) finish(task *model.DownloadTask, outcome *Outcome) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task.FinishedAt = time.Now()
	if outcome.Err != nil {
		task.Status = model.StatusFailed
		task.LastError = outcome.Err
		s.logger.Warn("download failed",
			zap.String("task_id", task.ID),
			zap.String("platform", task.Platform.String()),
			zap.Error(outcome.Err))
	} else {
		task.Status = model.StatusCompleted
		task.Artifact = outcome.Result.ArtifactPath
		s.logger.Info("download completed",
			zap.String("task_id", task.ID),
			zap.String("artifact", outcome.Result.ArtifactPath),
			zap.Int64("size", outcome.Result.Size))
	}
	delete(s.tasks, task.ID)
}

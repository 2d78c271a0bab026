package network

import (
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"github.com/OlliePugh/parkr/internal/parallel"
)

// DefaultStepSize is used when TrainConfig.StepSize is zero.
const DefaultStepSize = 0.1

// Options is a set of training flags.
type Options uint8

// Training flags.
const (
	// SuppressLossLog disables the per-epoch log record.
	SuppressLossLog Options = 1 << iota
	// ExportLosses writes one CSV row per epoch to TrainConfig.LossWriter.
	ExportLosses
)

// TrainConfig holds the settings shared by Train and BatchTrain.
type TrainConfig struct {
	StepSize   float64      // Learning rate (default: 0.1).
	Options    Options      // Flags, see SuppressLossLog and ExportLosses.
	LossWriter io.Writer    // Destination of exported losses; required with ExportLosses.
	Logger     *slog.Logger // Receives per-epoch losses (default: slog.Default()).

	// Workers evaluates the examples of a batch on this many goroutines.
	// Results do not depend on the value; 0 or 1 stays on the calling goroutine.
	Workers int
}

// EpochLoss is the outcome of one training epoch.
type EpochLoss struct {
	Epoch      int     // 1-based.
	Training   float64 // Mean squared error of the training examples before their update.
	Validation float64 // Mean squared error over the validation set after the epoch.
}

// Train runs full-batch gradient descent for the given number of epochs.
//
// Each epoch evaluates every training example, averages the proposed weights
// and biases over the whole set, applies them once, and then measures the
// validation loss. Train returns the validation loss of the last epoch.
func (n *Network) Train(epochs int, train, expected, validation, validationExpected [][]float64, cfg TrainConfig) (float64, error) {
	return n.BatchTrain(epochs, len(train), train, expected, validation, validationExpected, cfg)
}

// BatchTrain runs mini-batch gradient descent.
//
// The training set is cut into contiguous batches of batchSize examples (the
// last one may be shorter). Within an epoch each batch is applied in turn and
// followed by a validation pass; the epoch's validation loss is the mean over
// its batches. BatchTrain returns the validation loss of the last epoch.
func (n *Network) BatchTrain(epochs, batchSize int, train, expected, validation, validationExpected [][]float64, cfg TrainConfig) (float64, error) {
	if epochs < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "epochs must not be negative, got %d", epochs)
	}
	if len(train) == 0 {
		return 0, errors.Wrap(ErrDatasetSizeMismatch, "training set is empty")
	}
	if err := n.checkDataset("training set", train, expected); err != nil {
		return 0, err
	}
	if err := n.checkDataset("validation set", validation, validationExpected); err != nil {
		return 0, err
	}
	if batchSize <= 0 || batchSize > len(train) {
		return 0, errors.Wrapf(ErrBatchSizeInvalid, "batch size %d must be in 1..%d", batchSize, len(train))
	}
	if cfg.Options&ExportLosses != 0 && cfg.LossWriter == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "ExportLosses requires a LossWriter")
	}

	step := cfg.StepSize
	if step == 0 {
		step = DefaultStepSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pcfg := parallel.Config{Workers: cfg.Workers, MinChunk: parallel.DefaultConfig().MinChunk}

	var export *csv.Writer
	if cfg.Options&ExportLosses != 0 {
		export = csv.NewWriter(cfg.LossWriter)
		if err := writeLossRow(export, "epoch", "training_loss", "validation_loss"); err != nil {
			return 0, err
		}
	}

	var last float64
	for epoch := 1; epoch <= epochs; epoch++ {
		result := n.epoch(epoch, batchSize, train, expected, validation, validationExpected, step, pcfg)
		last = result.Validation

		if cfg.Options&SuppressLossLog == 0 {
			logger.Info("epoch complete",
				slog.Int("epoch", result.Epoch),
				slog.Float64("training_loss", result.Training),
				slog.Float64("validation_loss", result.Validation),
			)
		}
		if export != nil {
			err := writeLossRow(export,
				strconv.Itoa(result.Epoch),
				strconv.FormatFloat(result.Training, 'g', -1, 64),
				strconv.FormatFloat(result.Validation, 'g', -1, 64),
			)
			if err != nil {
				return last, err
			}
		}
	}

	return last, nil
}

func (n *Network) epoch(epoch, batchSize int, train, expected, validation, validationExpected [][]float64, step float64, pcfg parallel.Config) EpochLoss {
	costs := make([]float64, 0, len(train))
	batchLosses := make([]float64, 0, (len(train)+batchSize-1)/batchSize)

	for start := 0; start < len(train); start += batchSize {
		end := min(start+batchSize, len(train))
		costs = append(costs, n.trainBatch(train[start:end], expected[start:end], step, pcfg)...)
		batchLosses = append(batchLosses, n.loss(validation, validationExpected))
	}

	return EpochLoss{
		Epoch:      epoch,
		Training:   mean(costs),
		Validation: mean(batchLosses),
	}
}

// trainBatch proposes updates for every example of the batch against the
// current parameters, then applies their average. It returns the cost of each
// example.
//
// Proposals are always summed in example order, so the outcome is the same
// however many workers produced them.
func (n *Network) trainBatch(inputs, expected [][]float64, step float64, pcfg parallel.Config) []float64 {
	acc := n.newAccumulator(len(inputs))
	costs := make([]float64, len(inputs))

	chunks := pcfg.Chunks(len(inputs))
	if chunks == 1 {
		w := n.newWorkspace()
		for i := range inputs {
			costs[i] = n.propose(w, inputs[i], expected[i], step)
			acc.add(w.proposal)
		}
		n.apply(acc)
		return costs
	}

	workspaces := make([]*workspace, chunks)
	proposals := make([]proposal, len(inputs))
	parallel.For(len(inputs), pcfg, func(worker, i int) {
		w := workspaces[worker]
		if w == nil {
			w = n.newWorkspace()
			workspaces[worker] = w
		}
		costs[i] = n.propose(w, inputs[i], expected[i], step)
		proposals[i] = w.proposal.clone()
	})

	for _, p := range proposals {
		acc.add(p)
	}
	n.apply(acc)
	return costs
}

func writeLossRow(w *csv.Writer, fields ...string) error {
	if err := w.Write(fields); err != nil {
		return errors.Wrap(err, "failed to export losses")
	}
	w.Flush()
	return errors.Wrap(w.Error(), "failed to export losses")
}

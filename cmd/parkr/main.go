// Package main provides the parkr CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/OlliePugh/parkr/internal/dataset"
	"github.com/OlliePugh/parkr/nn"
	"github.com/OlliePugh/parkr/serialization"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "version":
		fmt.Printf("parkr %s\n", version)
	case "train":
		train(args)
	case "predict":
		predict(args)
	case "inspect":
		inspect(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("parkr - layered perceptron trainer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a network on a CSV dataset and save it")
	fmt.Println("  predict    Run a saved network on one input row")
	fmt.Println("  inspect    Print the topology and parameters of a saved network")
}

func train(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataPath := fs.String("data", "", "CSV file with one example per row: inputs then expected outputs")
	inputs := fs.Int("inputs", 0, "Number of input columns")
	header := fs.Bool("header", false, "Skip the first CSV row")
	hidden := fs.String("hidden", "", "Comma-separated hidden layer sizes, e.g. 4,3")
	method := fs.String("method", "sigmoid", "Activation: "+methodNames())
	epochs := fs.Int("epochs", 1000, "Number of training epochs")
	step := fs.Float64("step", nn.DefaultStepSize, "Step size (learning rate)")
	batchSize := fs.Int("batch", 0, "Mini-batch size (0 = full batch)")
	valRatio := fs.Float64("val", 0, "Fraction of rows held out for validation")
	seed := fs.Int64("seed", 1, "Seed for weight initialisation")
	workers := fs.Int("workers", 1, "Goroutines evaluating each batch")
	out := fs.String("out", "model.prkr", "Output model file")
	losses := fs.String("losses", "", "Write per-epoch losses to this CSV file")
	quiet := fs.Bool("quiet", false, "Do not log per-epoch losses")
	legacy := fs.Bool("legacy", false, "Save in the legacy layout without header and checksum")
	_ = fs.Parse(args)

	if *dataPath == "" {
		log.Fatalf("-data is required")
	}
	m, err := nn.ParseMethod(*method)
	if err != nil {
		log.Fatalf("Invalid -method: %v", err)
	}
	hiddenSizes, err := parseSizes(*hidden)
	if err != nil {
		log.Fatalf("Invalid -hidden: %v", err)
	}

	data, err := dataset.Load(*dataPath, dataset.Options{Inputs: *inputs, Header: *header})
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	trainData, valData := data.Split(*valRatio)
	fmt.Printf("Train: %d samples, Val: %d samples\n", trainData.Len(), valData.Len())

	net, err := nn.New(nn.Config{
		Inputs:  *inputs,
		Outputs: len(data.Expected[0]),
		Hidden:  hiddenSizes,
		Method:  m,
		Rand:    rand.New(rand.NewSource(*seed)), //nolint:gosec // weight initialisation only
	})
	if err != nil {
		log.Fatalf("Failed to create network: %v", err)
	}
	fmt.Printf("Network: %s, layers %v, %d links\n", m, net.LayerSizes(), net.LinkCount())

	cfg := nn.TrainConfig{
		StepSize: *step,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Workers:  *workers,
	}
	if *quiet {
		cfg.Options |= nn.SuppressLossLog
	}
	if *losses != "" {
		f, err := os.Create(*losses)
		if err != nil {
			log.Fatalf("Failed to create loss file: %v", err)
		}
		defer func() { _ = f.Close() }()
		cfg.Options |= nn.ExportLosses
		cfg.LossWriter = f
	}

	if *batchSize == 0 {
		*batchSize = trainData.Len()
	}
	loss, err := net.BatchTrain(*epochs, *batchSize,
		trainData.Inputs, trainData.Expected, valData.Inputs, valData.Expected, cfg)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	fmt.Printf("Final validation loss: %.6f\n", loss)

	opts := serialization.Options{}
	if *legacy {
		opts.Layout = serialization.LayoutLegacy
	}
	if err := serialization.Save(*out, net, opts); err != nil {
		log.Fatalf("Failed to save model: %v", err)
	}
	fmt.Printf("Saved %s (%s layout)\n", *out, opts.Layout)
}

func predict(args []string) {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	modelPath := fs.String("model", "model.prkr", "Model file")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatalf("Usage: parkr predict -model m.prkr x1,x2,...")
	}
	values, err := parseValues(fs.Arg(0))
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	net, _, err := serialization.Load(*modelPath)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	outputs, err := net.ForwardPass(values)
	if err != nil {
		log.Fatalf("Forward pass failed: %v", err)
	}
	for _, v := range outputs {
		fmt.Println(v)
	}
}

func inspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	modelPath := fs.String("model", "model.prkr", "Model file")
	_ = fs.Parse(args)

	net, header, err := serialization.Load(*modelPath)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}

	fmt.Printf("Layout:     %s", header.Layout)
	if header.Layout == serialization.LayoutTagged {
		fmt.Printf(" (version %d)", header.Version)
	}
	fmt.Println()
	fmt.Printf("Activation: %s\n", header.Method)
	fmt.Printf("Layers:     %v\n", header.Sizes)
	fmt.Printf("Nodes:      %d\n", header.Nodes())
	fmt.Printf("Links:      %d\n\n", header.Links())

	if err := net.Describe(os.Stdout); err != nil {
		log.Fatalf("Failed to describe network: %v", err)
	}
}

func methodNames() string {
	names := make([]string, 0, len(nn.Methods()))
	for _, m := range nn.Methods() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

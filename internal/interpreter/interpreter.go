package interpreter

import (
	"context"
	"fmt"

	"github.com/artuross/exprcalc/internal/defaults"
	"github.com/artuross/exprcalc/internal/lang/ast"
	"github.com/artuross/exprcalc/internal/lang/evaluate"
	"github.com/artuross/exprcalc/internal/lang/parser"
	"github.com/artuross/exprcalc/internal/log/semconv"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "github.com/artuross/exprcalc/internal/interpreter"
)

type Source struct {
	Name string
	Text string
}

type Result struct {
	RunID   string
	Name    string
	Program *ast.Program
	Value   string
}

type Interpreter struct {
	tracer      trace.Tracer
	concurrency int
	newRunID    func() string
}

func New(options ...func(*Interpreter)) *Interpreter {
	interpreter := Interpreter{
		tracer:      defaults.TracerProvider.Tracer(tracerName),
		concurrency: defaults.Concurrency,
		newRunID:    uuid.NewString,
	}

	for _, apply := range options {
		apply(&interpreter)
	}

	return &interpreter
}

// Run parses and evaluates a single source.
func (i *Interpreter) Run(ctx context.Context, source Source) (*Result, error) {
	runID := i.newRunID()

	ctx, span := i.tracer.Start(
		ctx,
		"run",
		trace.WithAttributes(
			attribute.String(semconv.RunID, runID),
			attribute.String(semconv.SourceName, source.Name),
			attribute.Int(semconv.SourceLength, len(source.Text)),
		),
	)
	defer span.End()

	logger := zerolog.Ctx(ctx).With().
		Str(semconv.RunID, runID).
		Str(semconv.SourceName, source.Name).
		Logger()

	program, err := i.parse(ctx, source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")

		logger.Debug().Err(err).Msg("parse source")

		return nil, fmt.Errorf("parse %s: %w", source.Name, err)
	}

	logger.Debug().Int(semconv.NodeCount, len(program.Nodes)).Msg("parsed source")

	value, err := i.evaluate(ctx, program)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "evaluate failed")

		logger.Debug().Err(err).Msg("evaluate program")

		return nil, fmt.Errorf("evaluate %s: %w", source.Name, err)
	}

	logger.Debug().Str(semconv.Value, value).Msg("evaluated program")

	result := Result{
		RunID:   runID,
		Name:    source.Name,
		Program: program,
		Value:   value,
	}

	return &result, nil
}

// RunAll runs every source on its own parser, at most concurrency at a time.
// Results keep the order of sources. The first failure cancels the sources
// that did not start yet and is returned.
func (i *Interpreter) RunAll(ctx context.Context, sources []Source) ([]*Result, error) {
	ctx, span := i.tracer.Start(
		ctx,
		"run all",
		trace.WithAttributes(attribute.Int(semconv.SourceCount, len(sources))),
	)
	defer span.End()

	results := make([]*Result, len(sources))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(i.concurrency)

	for index, source := range sources {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := i.Run(ctx, source)
			if err != nil {
				return err
			}

			results[index] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run failed")

		return nil, err
	}

	return results, nil
}

func (i *Interpreter) parse(ctx context.Context, source Source) (*ast.Program, error) {
	_, span := i.tracer.Start(ctx, "parse")
	defer span.End()

	program, err := parser.New(source.Text).ParseProgram()
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int(semconv.NodeCount, len(program.Nodes)))

	return program, nil
}

func (i *Interpreter) evaluate(ctx context.Context, program *ast.Program) (string, error) {
	_, span := i.tracer.Start(ctx, "evaluate")
	defer span.End()

	return evaluate.New(program).Evaluate()
}

func WithConcurrency(concurrency int) func(*Interpreter) {
	return func(i *Interpreter) {
		i.concurrency = max(concurrency, 1)
	}
}

func WithRunIDGenerator(newRunID func() string) func(*Interpreter) {
	return func(i *Interpreter) {
		i.newRunID = newRunID
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Interpreter) {
	return func(i *Interpreter) {
		i.tracer = tp.Tracer(tracerName)
	}
}

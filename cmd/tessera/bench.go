package main

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/born-ml/tessera/tensor"
)

func benchCommand() cli.Command {
	return cli.Command{
		Name:  "bench",
		Usage: "Time sequential against dispatched elementwise addition",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "rows,r", Value: 2048, Usage: "Rows per operand"},
			cli.IntFlag{Name: "cols,c", Value: 2048, Usage: "Columns per operand"},
			cli.IntFlag{Name: "reps,n", Value: 5, Usage: "Repetitions per measurement"},
		},
		Action: func(c *cli.Context) error {
			rows, cols, reps := c.Int("rows"), c.Int("cols"), c.Int("reps")
			if rows <= 0 || cols <= 0 || reps <= 0 {
				return errors.Errorf("bench: rows, cols and reps must be positive, got %d, %d, %d", rows, cols, reps)
			}

			results, err := runBench(rows, cols, reps)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(c.App.Writer)
			table.SetHeader([]string{"Type", "Mode", "Workers", "Mean", "Speedup"})
			table.SetCaption(true, fmt.Sprintf("Add on (%d, %d), %d reps", rows, cols, reps))
			table.SetBorder(false)
			for _, r := range results {
				table.Append([]string{
					r.dtype.String(),
					r.mode,
					fmt.Sprint(r.workers),
					r.mean.String(),
					fmt.Sprintf("%.2fx", r.speedup),
				})
			}
			table.Render()
			return nil
		},
	}
}

type benchResult struct {
	dtype   tensor.DataType
	mode    string
	workers int
	mean    time.Duration
	speedup float64
}

func runBench(rows, cols, reps int) ([]benchResult, error) {
	prev := tensor.CurrentParallelConfig()
	defer tensor.SetParallelConfig(prev)

	var results []benchResult
	for _, measure := range []func(int, int, int) ([]benchResult, error){
		benchAdd[float64],
		benchAdd[int32],
	} {
		r, err := measure(rows, cols, reps)
		if err != nil {
			return nil, err
		}
		results = append(results, r...)
	}
	return results, nil
}

// benchAdd returns the sequential and the dispatched measurement for T.
func benchAdd[T tensor.Number](rows, cols, reps int) ([]benchResult, error) {
	shape := tensor.Shape{rows, cols}
	a, err := tensor.Full[T](shape, 1)
	if err != nil {
		return nil, err
	}
	b, err := tensor.Full[T](shape, 2)
	if err != nil {
		return nil, err
	}

	dispatched := tensor.DefaultParallelConfig()
	dispatched.Enabled = true
	modes := []struct {
		name string
		cfg  tensor.ParallelConfig
	}{
		{"sequential", tensor.SequentialConfig()},
		{"dispatched", dispatched},
	}

	var results []benchResult
	for _, m := range modes {
		tensor.SetParallelConfig(m.cfg)

		start := time.Now()
		for range reps {
			if _, err := tensor.Add(a, b); err != nil {
				return nil, errors.Wrapf(err, "bench %s add", m.name)
			}
		}
		mean := time.Since(start) / time.Duration(reps)

		workers := 1
		if m.cfg.Enabled {
			workers = m.cfg.NumWorkers
		}
		results = append(results, benchResult{
			dtype:   tensor.DTypeOf[T](),
			mode:    m.name,
			workers: workers,
			mean:    mean,
		})
		logrus.WithFields(logrus.Fields{"type": tensor.DTypeOf[T](), "mode": m.name, "mean": mean}).Debug("bench")
	}

	base := results[0].mean
	for i := range results {
		if results[i].mean > 0 {
			results[i].speedup = float64(base) / float64(results[i].mean)
		}
	}
	return results, nil
}

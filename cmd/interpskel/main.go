// Command interpskel computes the interpolation skeleton of a pair of sparse
// matrices stored in the binary CSC format produced by interp.CSC's
// MarshalBinary, writing the resulting sparsity pattern and weighted row sums
// to disk.  The diagonal of the operator is extracted from the operator
// itself.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/james-bowman/interp"
)

var (
	aPath       string
	bPath       string
	weightsPath string
	patternPath string
	sumsPath    string
	tol         float64
	policyName  string
)

func main() {
	cmd := &cobra.Command{
		Use:   "interpskel",
		Short: "Compute an AMG interpolation skeleton from CSC matrix files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run()
		},
	}

	cmd.Flags().StringVar(&aPath, "mat-a", "", "path to the fine-grid operator A in binary CSC format (required)")
	cmd.Flags().StringVar(&bPath, "mat-b", "", "path to the target matrix B in binary CSC format (required)")
	cmd.Flags().StringVar(&weightsPath, "weights", "", "path to a text file of column weights, one per line (default all ones)")
	cmd.Flags().StringVar(&patternPath, "out-pattern", "skel.pat", "output path for the skeleton pattern")
	cmd.Flags().StringVar(&sumsPath, "out-sums", "skel.sum", "output path for the weighted row sums")
	cmd.Flags().Float64Var(&tol, "tol", 1e-3, "sparsity tolerance")
	cmd.Flags().StringVar(&policyName, "policy", "sum", "stopping policy: max or sum")
	cobra.CheckErr(cmd.MarkFlagRequired("mat-a"))
	cobra.CheckErr(cmd.MarkFlagRequired("mat-b"))

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	var policy interp.StopPolicy
	switch policyName {
	case "max":
		policy = interp.StopMax
	case "sum":
		policy = interp.StopSum
	default:
		return fmt.Errorf("unrecognised stopping policy %q: want max or sum", policyName)
	}

	a, err := readCSC(aPath)
	if err != nil {
		return fmt.Errorf("reading A: %w", err)
	}
	b, err := readCSC(bPath)
	if err != nil {
		return fmt.Errorf("reading B: %w", err)
	}

	_, bc := b.Dims()
	u := make([]float64, bc)
	for i := range u {
		u[i] = 1
	}
	if weightsPath != "" {
		if u, err = readWeights(weightsPath); err != nil {
			return fmt.Errorf("reading weights: %w", err)
		}
	}

	ip := interp.Interpolator{Policy: policy}
	pattern, sums, err := ip.Skeleton(a, b, a.Diagonal(), u, tol)
	if err != nil {
		return err
	}

	if err := writePattern(patternPath, pattern); err != nil {
		return err
	}
	if err := writeSums(sumsPath, sums); err != nil {
		return err
	}

	r, c := pattern.Dims()
	fmt.Printf("skeleton %dx%d with %d entries written to %s, row sums to %s\n",
		r, c, pattern.NNZ(), patternPath, sumsPath)
	return nil
}

func readCSC(path string) (*interp.CSC, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m interp.CSC
	if _, err := m.UnmarshalBinaryFrom(bufio.NewReader(f)); err != nil {
		return nil, err
	}
	return &m, nil
}

func readWeights(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var w []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(w)+1, err)
		}
		w = append(w, v)
	}
	return w, scanner.Err()
}

func writePattern(path string, p *interp.Pattern) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := p.MarshalBinaryTo(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func writeSums(path string, sums []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range sums {
		if _, err := fmt.Fprintf(w, "%.17g\n", v); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// huffzip compresses and expands files using the Huffman container
// format from the huffman package.
//
// Usage:
//
//	huffzip [options] file...
//
// Options:
//
//	-d        Decompress (inputs should end in .huf)
//	-j N      Process up to N files in parallel (default: number of CPUs)
//	-v        Per-file statistics (sizes, ratio, bits per symbol)
//
// Compressing file writes file.huf; decompressing file.huf writes file.
// A decompression input without the .huf suffix writes file.orig.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mrjoshuak/go-huffman/huffman"
)

const hufSuffix = ".huf"

type fileResult struct {
	name       string
	inBytes    int
	outBytes   int
	bitsPerSym float64
	elapsed    time.Duration
}

func main() {
	var (
		decompress = flag.Bool("d", false, "Decompress instead of compress")
		workers    = flag.Int("j", runtime.NumCPU(), "Number of files to process in parallel")
		verbose    = flag.Bool("v", false, "Print per-file statistics")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: huffzip [options] file...")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *workers < 1 {
		*workers = 1
	}

	files := flag.Args()
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			// Another file may already have failed.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var err error
			if *decompress {
				results[i], err = expandFile(name)
			} else {
				results[i], err = compressFile(name)
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "huffzip:", err)
		os.Exit(1)
	}

	if *verbose {
		printStats(results, *decompress)
	}
}

func compressFile(name string) (fileResult, error) {
	start := time.Now()
	data, err := os.ReadFile(name)
	if err != nil {
		return fileResult{}, err
	}

	packed, err := huffman.Compress(data)
	if err != nil {
		return fileResult{}, fmt.Errorf("%s: %w", name, err)
	}
	if err := os.WriteFile(name+hufSuffix, packed, 0o644); err != nil {
		return fileResult{}, err
	}

	res := fileResult{
		name:     name,
		inBytes:  len(data),
		outBytes: len(packed),
		elapsed:  time.Since(start),
	}
	if len(data) > 0 {
		ft := huffman.Count(data)
		if root, err := huffman.BuildTree(ft); err == nil {
			res.bitsPerSym = huffman.AvgLength(root, ft)
		}
	}
	return res, nil
}

func expandFile(name string) (fileResult, error) {
	start := time.Now()
	data, err := os.ReadFile(name)
	if err != nil {
		return fileResult{}, err
	}

	plain, err := huffman.Decompress(data)
	if err != nil {
		return fileResult{}, fmt.Errorf("%s: %w", name, err)
	}

	outName := name + ".orig"
	if strings.HasSuffix(name, hufSuffix) {
		outName = strings.TrimSuffix(name, hufSuffix)
	}
	if err := os.WriteFile(outName, plain, 0o644); err != nil {
		return fileResult{}, err
	}
	return fileResult{
		name:     name,
		inBytes:  len(data),
		outBytes: len(plain),
		elapsed:  time.Since(start),
	}, nil
}

func printStats(results []fileResult, decompress bool) {
	p := message.NewPrinter(language.English) // commas between thousands
	for _, r := range results {
		if decompress {
			p.Printf("%s: %d -> %d bytes in %v\n", r.name, r.inBytes, r.outBytes, r.elapsed.Round(time.Millisecond))
			continue
		}
		ratio := 0.0
		if r.inBytes > 0 {
			ratio = float64(r.outBytes) / float64(r.inBytes)
		}
		p.Printf("%s: %d -> %d bytes (%.1f%%), %.3f bits/symbol, %v\n",
			r.name, r.inBytes, r.outBytes, 100*ratio, r.bitsPerSym,
			r.elapsed.Round(time.Millisecond))
	}
}

// hufmetrics benchmarks the Huffman container against general-purpose
// codecs over the same inputs.
//
// Usage:
//
//	hufmetrics [options] file...
//
// Options:
//
//	--method    Comma-separated methods (huffman,flate,zstd,all)
//	--passes N  Number of timing passes per method (default: 10)
//	--csv       Output in CSV format
//	-v          Verbose output
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"

	"github.com/mrjoshuak/go-huffman/huffman"
)

type method struct {
	name       string
	compress   func([]byte) ([]byte, error)
	decompress func([]byte) ([]byte, error)
}

type runResult struct {
	File           string
	Method         string
	InBytes        int
	OutBytes       int
	CompressTime   time.Duration
	DecompressTime time.Duration
}

func main() {
	var (
		methodList = flag.String("method", "all", "Compression methods (huffman,flate,zstd,all)")
		passes     = flag.Int("passes", 10, "Number of timing passes")
		csvOutput  = flag.Bool("csv", false, "Output in CSV format")
		verbose    = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hufmetrics [options] file...")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *passes < 1 {
		*passes = 1
	}

	methods, err := parseMethods(*methodList)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hufmetrics:", err)
		os.Exit(1)
	}

	var results []runResult
	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hufmetrics:", err)
			os.Exit(1)
		}
		for _, m := range methods {
			if *verbose {
				fmt.Fprintf(os.Stderr, "%s: %s, %d passes\n", name, m.name, *passes)
			}
			r, err := benchmark(name, m, data, *passes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "hufmetrics: %s/%s: %v\n", name, m.name, err)
				os.Exit(1)
			}
			results = append(results, r)
		}
	}

	if *csvOutput {
		printCSV(results)
	} else {
		printTable(results)
	}
}

func parseMethods(s string) ([]method, error) {
	all := []method{
		{"huffman", huffman.Compress, huffman.Decompress},
		{"flate", flateCompress, flateDecompress},
		{"zstd", zstdCompress, zstdDecompress},
	}
	if s == "all" {
		return all, nil
	}

	var result []method
	for _, name := range strings.Split(s, ",") {
		found := false
		for _, m := range all {
			if m.name == name {
				result = append(result, m)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown method %q", name)
		}
	}
	return result, nil
}

// benchmark times the method over the requested passes, keeping the
// fastest pass, and verifies the round trip once.
func benchmark(file string, m method, data []byte, passes int) (runResult, error) {
	packed, err := m.compress(data)
	if err != nil {
		return runResult{}, err
	}
	plain, err := m.decompress(packed)
	if err != nil {
		return runResult{}, err
	}
	if !bytes.Equal(plain, data) {
		return runResult{}, fmt.Errorf("round trip mismatch (%d bytes out, %d in)", len(plain), len(data))
	}

	res := runResult{
		File:     file,
		Method:   m.name,
		InBytes:  len(data),
		OutBytes: len(packed),
	}
	for i := 0; i < passes; i++ {
		start := time.Now()
		if _, err := m.compress(data); err != nil {
			return runResult{}, err
		}
		if d := time.Since(start); i == 0 || d < res.CompressTime {
			res.CompressTime = d
		}

		start = time.Now()
		if _, err := m.decompress(packed); err != nil {
			return runResult{}, err
		}
		if d := time.Since(start); i == 0 || d < res.DecompressTime {
			res.DecompressTime = d
		}
	}
	return res, nil
}

func flateCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func flateDecompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	return io.ReadAll(r)
}

func zstdCompress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func zstdDecompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

func printCSV(results []runResult) {
	fmt.Println("file,method,in_bytes,out_bytes,ratio,compress_s,decompress_s")
	for _, r := range results {
		fmt.Printf("%s,%s,%d,%d,%.4f,%.6f,%.6f\n",
			r.File, r.Method, r.InBytes, r.OutBytes, ratio(r),
			r.CompressTime.Seconds(), r.DecompressTime.Seconds())
	}
}

func printTable(results []runResult) {
	fmt.Printf("%-24s %-8s %12s %12s %7s %12s %12s\n",
		"file", "method", "in", "out", "ratio", "compress", "decompress")
	for _, r := range results {
		fmt.Printf("%-24s %-8s %12d %12d %6.1f%% %12v %12v\n",
			r.File, r.Method, r.InBytes, r.OutBytes, 100*ratio(r),
			r.CompressTime.Round(time.Microsecond),
			r.DecompressTime.Round(time.Microsecond))
	}
}

func ratio(r runResult) float64 {
	if r.InBytes == 0 {
		return 0
	}
	return float64(r.OutBytes) / float64(r.InBytes)
}

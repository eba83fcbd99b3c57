// Command qowi encodes and decodes images in the Quite OK Wavelet Image
// format.
//
//	qowi encode <src> <dst> [-t hard] [-s soft] [-w levels] [-p precision]
//	qowi decode <src> <dst>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrafox/qowi"
	"github.com/extrafox/qowi/imageio"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	op := os.Args[1]
	switch op {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown operation %q\n", op)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  qowi encode <src> <dst> [-t hard] [-s soft] [-w levels] [-p precision]")
	fmt.Fprintln(os.Stderr, "  qowi decode <src> <dst>")
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	hard := fs.Int("t", -1, "wavelet hard threshold (-1 disables)")
	soft := fs.Int("s", -1, "wavelet soft threshold (-1 disables)")
	levels := fs.Int("w", 10, "number of wavelet levels to encode")
	precision := fs.Int("p", 0, "precision in binary digits to round at each wavelet level")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 {
		usage()
		os.Exit(1)
	}
	src, dst := rest[0], rest[1]

	in, err := os.Open(src)
	if err != nil {
		log.Fatalf("cannot open input %s: %s", src, err)
	}
	defer in.Close()

	img, err := imageio.Decode(in)
	if err != nil {
		log.Fatalf("cannot decode input %s: %s", src, err)
	}

	opts := qowi.DefaultOptions()
	opts.HardThreshold = *hard
	opts.SoftThreshold = *soft
	opts.WaveletLevels = *levels
	opts.PrecisionDigits = *precision

	data, err := qowi.Encode(img, opts)
	if err != nil {
		log.Fatalf("cannot encode %s: %s", src, err)
	}

	if err := os.WriteFile(dst, data, 0o644); err != nil {
		log.Fatalf("cannot write output %s: %s", dst, err)
	}

	fmt.Println("Encoding completed successfully.")
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 {
		usage()
		os.Exit(1)
	}
	src, dst := rest[0], rest[1]

	data, err := os.ReadFile(src)
	if err != nil {
		log.Fatalf("cannot open input %s: %s", src, err)
	}

	img, err := qowi.Decode(data)
	if err != nil {
		log.Fatalf("cannot decode %s: %s", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		log.Fatalf("cannot create output %s: %s", dst, err)
	}
	defer out.Close()

	format := outputFormat(dst)
	if err := imageio.Encode(out, format, img); err != nil {
		log.Fatalf("cannot write output %s: %s", dst, err)
	}

	fmt.Println("Decoding completed successfully.")
}

// outputFormat infers the image format from dst's extension, defaulting to
// PNG when the extension is unrecognized (mirrors the reference
// implementation's skimage.io.imsave, which also infers format from path).
func outputFormat(dst string) string {
	switch strings.ToLower(filepath.Ext(dst)) {
	case ".bmp":
		return "bmp"
	default:
		return "png"
	}
}

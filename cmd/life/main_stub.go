//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of gol-web requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or build with `-tags ebiten`;")
	fmt.Fprintln(os.Stderr, "for the browser use `GOOS=js GOARCH=wasm go build -tags ebiten ./cmd/life`.")
	os.Exit(2)
}

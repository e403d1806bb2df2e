// identicon WASM — client-side avatar rendering.
// Compiled with: GOOS=js GOARCH=wasm go build -o identicon.wasm ./clients/wasm/

//go:build js && wasm

package main

import (
	"encoding/base64"
	"fmt"
	"syscall/js"

	"github.com/pixfall/identicon/pkg/identicon"
	"github.com/pixfall/identicon/pkg/pixel"
)

func main() {
	fmt.Println("identicon WASM loaded")

	// Register JS-callable functions.
	js.Global().Set("goRenderIdenticon", js.FuncOf(renderIdenticon))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// goRenderIdenticon(data, sizePx, padding) — render the default MD5/5x5
// pipeline for data and return a base64 PNG, or an "error: ..." string.
func renderIdenticon(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need data")
	}

	data := args[0].String()
	spec := pixel.RenderSpec{Format: pixel.FormatPNG}
	if len(args) > 1 {
		spec.Size = args[1].Int()
	}
	if len(args) > 2 {
		spec.Padding = args[2].Int()
	}

	ic, err := identicon.New()
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	payload, err := ic.Generate(data, spec)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	return js.ValueOf(base64.StdEncoding.EncodeToString(payload))
}

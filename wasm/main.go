//go:build js && wasm

package main

import (
	"syscall/js"

	"rpcalc/app/lang"
)

var session = lang.NewSession()

func main() {
	// Register evaluate function
	js.Global().Set("evaluate", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		res := session.EvalLine(args[0].String())

		obj := js.Global().Get("Object").New()
		obj.Set("text", res.Text)
		obj.Set("isErr", res.IsErr)
		obj.Set("prompt", session.Prompt())
		return obj
	}))

	// Stack as an array of display strings, bottom first
	js.Global().Set("stack", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		calc := session.Calculator()
		vals := calc.Stack()
		arr := js.Global().Get("Array").New(len(vals))
		for i, v := range vals {
			arr.SetIndex(i, v.Format(calc.Radix()))
		}
		return arr
	}))

	js.Global().Set("reset", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		session.Reset()
		return nil
	}))

	// Signal that WASM is ready
	js.Global().Set("_wasmReady", true)
	onReady := js.Global().Get("_onWasmReady")
	if !onReady.IsUndefined() && !onReady.IsNull() {
		onReady.Invoke()
	}

	// Block forever
	select {}
}

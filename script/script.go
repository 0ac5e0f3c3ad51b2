// SPDX-License-Identifier: EPL-2.0

package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/ik5/wtgen/waveform"
	"github.com/ik5/wtgen/wavetable"
)

// FuncName is the global Lua function a script must define.
const FuncName = "wave"

// Script is a loaded Lua generator. It owns a Lua state and is not safe for
// concurrent use.
type Script struct {
	state *lua.LState
	fn    lua.LValue
	err   error
}

// Load runs source and looks up its wave function.
func Load(source string) (*Script, error) {
	return load(func(L *lua.LState) error { return L.DoString(source) })
}

// LoadFile is Load for a script on disk.
func LoadFile(path string) (*Script, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}

	return load(func(L *lua.LState) error { return L.DoFile(path) })
}

func load(run func(*lua.LState) error) (*Script, error) {
	L := lua.NewState()

	if err := run(L); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading script: %w", err)
	}

	fn := L.GetGlobal(FuncName)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("%w: %s is %s", ErrNoGenerator, FuncName, fn.Type())
	}

	return &Script{state: L, fn: fn}, nil
}

// Close releases the Lua state.
func (s *Script) Close() {
	s.state.Close()
}

// Err returns the first error raised while evaluating the script.
// Generators cannot report failures, so they yield 0 from then on and
// the error is kept here.
func (s *Script) Err() error { return s.err }

// Generator binds position and returns wave(phase, position) as a
// waveform.Generator.
func (s *Script) Generator(position float32) waveform.Generator {
	return func(phase float32) float32 {
		return s.eval(phase, position)
	}
}

// Waveform samples the script at position 0.
func (s *Script) Waveform() (*waveform.Waveform, error) {
	w := waveform.FromGenerator(s.Generator(0))
	if s.err != nil {
		return nil, s.err
	}

	return w, nil
}

// Wavetable samples the script once per slot, passing the slot position.
func (s *Script) Wavetable(name string) (*wavetable.Wavetable, error) {
	t := wavetable.FromGenerator(s.Generator, name)
	if s.err != nil {
		return nil, s.err
	}

	return t, nil
}

func (s *Script) eval(phase, position float32) float32 {
	if s.err != nil {
		return 0
	}

	L := s.state
	err := L.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(phase), lua.LNumber(position))
	if err != nil {
		s.err = fmt.Errorf("%s(%g, %g): %w", FuncName, phase, position, err)
		return 0
	}

	ret := L.Get(-1)
	L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		s.err = fmt.Errorf("%w: %s(%g, %g) returned %s", ErrNotNumber, FuncName, phase, position, ret.Type())
		return 0
	}

	return float32(n)
}

//go:build js && wasm

package jsdom

import (
	"context"
	"fmt"
	"syscall/js"
)

// LocalStorage is a theme.Store over window.localStorage.
type LocalStorage struct{}

func (LocalStorage) storage() (js.Value, error) {
	s := js.Global().Get("localStorage")
	if !truthy(s) {
		return js.Value{}, fmt.Errorf("localStorage unavailable")
	}
	return s, nil
}

func (l LocalStorage) Get(_ context.Context, key string) (value string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading localStorage: %v", r)
		}
	}()
	s, err := l.storage()
	if err != nil {
		return "", false, err
	}
	v := s.Call("getItem", key)
	if !truthy(v) {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (l LocalStorage) Set(_ context.Context, key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("writing localStorage: %v", r)
		}
	}()
	s, err := l.storage()
	if err != nil {
		return err
	}
	s.Call("setItem", key, value)
	return nil
}

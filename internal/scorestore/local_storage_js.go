//go:build js

package scorestore

import (
	"fmt"
	"strconv"
	"syscall/js"
)

// LocalStorage keeps the high score in the browser's window.localStorage.
type LocalStorage struct{}

// Open returns the platform default store. In the browser the path is
// ignored and the score lives under Key in localStorage.
func Open(string) *LocalStorage {
	return &LocalStorage{}
}

func storage() (js.Value, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return js.Value{}, ErrUnavailable
	}
	return ls, nil
}

func (LocalStorage) Load() (score int, err error) {
	defer func() {
		if r := recover(); r != nil {
			score, err = 0, fmt.Errorf("read localStorage: %v", r)
		}
	}()
	ls, err := storage()
	if err != nil {
		return 0, err
	}
	v := ls.Call("getItem", Key)
	if v.IsNull() || v.IsUndefined() {
		return 0, nil
	}
	n, err := strconv.Atoi(v.String())
	if err != nil {
		return 0, fmt.Errorf("parse stored high score %q: %w", v.String(), err)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

func (LocalStorage) Save(score int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("write localStorage: %v", r)
		}
	}()
	ls, err := storage()
	if err != nil {
		return err
	}
	ls.Call("setItem", Key, strconv.Itoa(score))
	return nil
}

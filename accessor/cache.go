// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accessor

// Cache is an accessor that serves a held value of its source instead of
// reading it again. Accessors of the slots inside a container are built on
// a Cache of the container, so that while the container is held its
// getter runs once no matter how many of its slots are read. When nothing
// is held, Get reads the source.
type Cache struct {
	Source Accessor

	held  bool
	value any
	err   error
}

// NewCache returns a new [Cache] of the given source.
func NewCache(source Accessor) *Cache { return &Cache{Source: source} }

// Hold makes Get return the given value and error, which must be the
// result of reading the source, until [Cache.Release] is called.
func (c *Cache) Hold(value any, err error) {
	c.held, c.value, c.err = true, value, err
}

// Read reads the source and holds the result.
func (c *Cache) Read() (any, error) {
	c.Hold(c.Source.Get())
	return c.value, c.err
}

// Held returns whether a value is held.
func (c *Cache) Held() bool { return c.held }

// Release stops serving the held value.
func (c *Cache) Release() {
	c.held, c.value, c.err = false, nil, nil
}

func (c *Cache) Get() (any, error) {
	if c.held {
		return c.value, c.err
	}
	return c.Source.Get()
}

// Set sets the value through the source. A held value is replaced by the
// new one, so that later write-backs through the cache start from it.
func (c *Cache) Set(value any) error {
	if err := c.Source.Set(value); err != nil {
		return err
	}
	if c.held && CanWrite(c.Source) {
		c.value, c.err = value, nil
	}
	return nil
}

func (c *Cache) CanWrite() bool { return CanWrite(c.Source) }

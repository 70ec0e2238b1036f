// SPDX-License-Identifier: MIT

package config

// Set overrides key for the lifetime of c.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

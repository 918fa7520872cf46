//go:build !release

package contract

const enabled = true

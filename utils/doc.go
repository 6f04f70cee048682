// SPDX-License-Identifier: EPL-2.0

// Package utils holds PCM sample conversions shared by the format bindings.
package utils

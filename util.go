// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

// integer min
func intMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// integer max
func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

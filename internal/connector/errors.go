package connector

import "fmt"

// ConnectError 表示连接建立失败。它是致命的，直接返回给调用方。
type ConnectError struct {
	Address string
	Err     error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Address, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// WriteError 表示连接建立后写入失败。Run 会把它归约为 success=false。
type WriteError struct {
	Written int
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed after %d bytes: %v", e.Written, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

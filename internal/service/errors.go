package service

import "fmt"

// SubjectError 单个标的重建失败，只中止该标的
type SubjectError struct {
	Ticker string
	Phase  Phase
	Err    error
}

func (e *SubjectError) Error() string {
	return fmt.Sprintf("%s在%s阶段失败: %v", e.Ticker, e.Phase, e.Err)
}

func (e *SubjectError) Unwrap() error { return e.Err }

package testdata

import (
	"context"
	"time"
)

//Klass
//aop:aspect Value=another_test_aspect
//aop:aspect Value=test_aspect
type Klass struct {
}

func (k *Klass) PublicMethod(ctx context.Context, id int64) (string, error) {
	return "nil", nil
}

//Ledger
/*aop:aspect Value="transactional"*/
type Ledger struct {
}

func (l *Ledger) Close(ctx context.Context, at time.Time) error {
	return nil
}

//NoneAspectStruct
type NoneAspectStruct struct {
}

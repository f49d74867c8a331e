// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	err := NewUnknownSortKey(context.Background(), "Step")
	require.Equal(t, ErrUnknownSortKey, err.ErrorCode())
	require.Contains(t, err.Error(), "Step")
	require.True(t, IsMoErrCode(err, ErrUnknownSortKey))
	require.False(t, IsMoErrCode(err, ErrBadSortConfig))
	require.True(t, IsMoErrCode(nil, Ok))
}

func TestErrorIs(t *testing.T) {
	err := NewBadSortConfig(context.Background(), "no sort keys supplied")
	require.True(t, errors.Is(NewBadSortConfig(context.Background(), "other"), err))
	require.False(t, errors.Is(NewInvalidInput(context.Background(), "x"), err))
}

func TestSucceeded(t *testing.T) {
	require.True(t, (&Error{code: Ok}).Succeeded())
	require.True(t, (&Error{code: OkMax}).Succeeded())
	require.False(t, NewInvalidInput(context.Background(), "x").Succeeded())
}

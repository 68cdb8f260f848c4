package pipefx_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/KasperOmsK/pipefx"
	"github.com/KasperOmsK/pipefx/internal/iterx"

	"github.com/stretchr/testify/require"
)

type account struct {
	Balance int
	History []int
}

func (a *account) Deposit(amount int) {
	a.Balance += amount
	a.History = append(a.History, amount)
}

func deposit(a *account, amount int) {
	a.Deposit(amount)
}

func TestMutate_YieldsSamePointer(t *testing.T) {
	acc := &account{}

	var balances []int
	var steps []*account
	for step := range pipefx.Mutate(seqOf(10, 20, 30), acc, deposit) {
		balances = append(balances, step.Balance)
		steps = append(steps, step)
	}

	require.Equal(t, []int{10, 30, 60}, balances)
	require.Len(t, steps, 3)
	for _, s := range steps {
		require.Same(t, acc, s)
	}
	require.Equal(t, []int{10, 20, 30}, acc.History)
}

func TestMutate_RetainedStepsAlias(t *testing.T) {
	acc := &account{}
	steps := collect(pipefx.Mutate(seqOf(1, 2), acc, deposit))

	// Both retained values are acc in its final state.
	require.Equal(t, 3, steps[0].Balance)
	require.Equal(t, 3, steps[1].Balance)

	steps[0].Balance = 100
	require.Equal(t, 100, acc.Balance)
	require.Equal(t, 100, steps[1].Balance)
}

func TestMutate_MethodExpression(t *testing.T) {
	acc := &account{}
	for range pipefx.Mutate(seqOf(5, 5), acc, (*account).Deposit) {
	}

	require.Equal(t, 10, acc.Balance)
}

func TestMutate_IsLazy(t *testing.T) {
	acc := &account{}
	pulled := 0
	p := pipefx.Mutate(iterx.Counting(iterx.Naturals(), &pulled), acc, deposit)

	require.Zero(t, pulled)
	require.Zero(t, acc.Balance)

	for step := range p {
		if len(step.History) == 4 {
			break
		}
	}

	require.Equal(t, 4, pulled)
	require.Equal(t, 0+1+2+3, acc.Balance)
}

func TestMutate_EmptyDriver(t *testing.T) {
	acc := &account{Balance: 7}

	require.Empty(t, collect(pipefx.Mutate(seqOf[int](), acc, deposit)))
	require.Equal(t, 7, acc.Balance)
}

func TestMutate_NilArguments(t *testing.T) {
	require.Panics(t, func() {
		pipefx.Mutate[int, account](seqOf(1), nil, deposit)
	})
	require.Panics(t, func() {
		pipefx.Mutate[int](seqOf(1), &account{}, nil)
	})
}

func TestTryMutate_StopsAtFirstError(t *testing.T) {
	acc := &account{}
	limit := errors.New("over limit")

	var balances []int
	var errs []error
	p := pipefx.TryMutate(seqOf(10, 20, 30), acc, func(a *account, amount int) error {
		if a.Balance+amount > 25 {
			return limit
		}
		a.Deposit(amount)
		return nil
	})

	for step, err := range p {
		require.Same(t, acc, step)
		balances = append(balances, step.Balance)
		errs = append(errs, err)
	}

	require.Equal(t, []int{10, 10}, balances)
	require.NoError(t, errs[0])
	require.ErrorIs(t, errs[1], limit)
	require.Equal(t, []int{10}, acc.History)
}

func TestSnapshots_ClonesEachStep(t *testing.T) {
	acc := &account{}
	clone := func(a account) account {
		a.History = slices.Clone(a.History)
		return a
	}

	steps := collect(pipefx.Snapshots(seqOf(1, 2, 3), acc, deposit, clone))

	require.Equal(t, []account{
		{Balance: 1, History: []int{1}},
		{Balance: 3, History: []int{1, 2}},
		{Balance: 6, History: []int{1, 2, 3}},
	}, steps)

	steps[0].Balance = 100
	require.Equal(t, 6, acc.Balance)
}

func TestSnapshots_DefaultCopyIsShallow(t *testing.T) {
	acc := &account{History: make([]int, 0, 8)}

	steps := collect(pipefx.Snapshots(seqOf(1, 2), acc, deposit, nil))

	require.Equal(t, 1, steps[0].Balance)
	require.Equal(t, 3, steps[1].Balance)

	// Balance was copied, History still shares acc's backing array.
	steps[1].History[0] = 42
	require.Equal(t, 42, acc.History[0])
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/venmorph/attestor-svc/internal/data/memory"
	"github.com/venmorph/attestor-svc/internal/xrpl"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

func TestSubmitterAtMostOncePerRun(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	sub := newSubmitter(fe, memory.NewAttestations(), nil, logan.New())

	payment := xrpl.Payment{Hash: "AB01", Destination: req.XRPLAddress, AmountDrops: xrpDrops("990")}
	paidAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	submitted, err := sub.submit(context.Background(), req, payment, paidAt)
	require.NoError(t, err)
	require.True(t, submitted)

	submitted, err = sub.submit(context.Background(), req, payment, paidAt)
	require.NoError(t, err)
	require.False(t, submitted, "a second submission for the same request must be refused")

	require.Equal(t, 1, fe.submissionCount())
	require.Equal(t, "AB01", fe.submissions[0].txHash)
	require.Equal(t, paidAt, fe.submissions[0].paidAt)
}

func TestSubmitterRetriesAfterFailure(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	fe.setSubmitErr(errors.New("insufficient funds"))
	sub := newSubmitter(fe, memory.NewAttestations(), nil, logan.New())

	payment := xrpl.Payment{Hash: "AB01", Destination: req.XRPLAddress, AmountDrops: xrpDrops("990")}
	paidAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	_, err := sub.submit(context.Background(), req, payment, paidAt)
	require.Error(t, err)
	require.Equal(t, 0, fe.submissionCount())

	// the failed attempt released the reservation, so one retry goes through
	fe.setSubmitErr(nil)
	submitted, err := sub.submit(context.Background(), req, payment, paidAt)
	require.NoError(t, err)
	require.True(t, submitted)
	require.Equal(t, 1, fe.submissionCount())
}

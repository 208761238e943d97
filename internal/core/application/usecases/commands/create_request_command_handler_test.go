package commands_test

import (
	"errors"
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRequestCommand(
		kernel.NewUUID(), request.SourceIndividual, kernel.NewUUID(),
		"10 Rue A", "Paris", "5 Rue B", "Lyon", 25.0, nil, "two boxes")
	require.NoError(t, err)

	repo := new(MockRequestRepository)
	uow := new(MockRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*request.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRequestCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRequestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRequestCommand{} // not constructed properly

	factory := new(MockRequestUoWFactory)
	h := commands.NewCreateRequestCommandHandler(factory)

	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateRequestCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRequestCommand(
		kernel.NewUUID(), request.SourceIndividual, kernel.NewUUID(),
		"10 Rue A", "Paris", "5 Rue B", "Lyon", 25.0, nil, "")
	require.NoError(t, err)

	uow := new(MockRequestUoW)
	factory := new(MockRequestUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateRequestCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

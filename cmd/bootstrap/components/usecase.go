package components

import (
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/queries"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	usecase.NewHandoverUseCase,
	usecase.NewAuthUseCase,
	usecase.NewDiagnosticsUseCase,
	usecase.NewCalendarFeedUseCase,
	// Every reservation mutation drops cached handover summaries.
	func(h usecase.HandoverUseCase) shared.ChangeListener {
		return h
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/emzxxx/gridgame-backend/internal/apperror"
	"github.com/emzxxx/gridgame-backend/internal/gridgame"
	"github.com/emzxxx/gridgame-backend/internal/usecase"
)

func (that *Server) handleNewMatch(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewMatch")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	match, err := that.manager.CreateMatch(ctx, usecase.CreateMatchParams{
		GridSize:    payloadReq.GridSize,
		Symbols:     payloadReq.Symbols,
		PlayerCount: payloadReq.PlayerCount,
		Variant:     gridgame.Variant(payloadReq.Variant),
	})
	if err != nil {
		log.Error("failed to create match", "error", err)
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, Payload{Match: match})
}

func (that *Server) handleMatchState(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMatchState")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.MatchID == "" {
		return that.sendErrorResponse(conn, msg.Action, "match_id is required")
	}

	match, err := that.manager.GetMatch(ctx, payloadReq.MatchID)
	if err != nil {
		if errors.Is(err, apperror.ErrMatchNotFound) {
			return that.sendErrorResponse(conn, msg.Action, "match not found")
		}

		log.Error("failed to get match", "id", payloadReq.MatchID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to get match")
	}

	return that.sendMessage(conn, msg.Action, Payload{Match: match})
}

func (that *Server) handleMatchTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMatchTurn")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.MatchID == "" {
		return that.sendErrorResponse(conn, msg.Action, "match_id is required")
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(conn, msg.Action, "cell is required")
	}

	feedback, match, err := that.manager.MakeTurn(ctx, payloadReq.MatchID, payloadReq.Symbol, *payloadReq.Cell)
	if err != nil {
		if errors.Is(err, apperror.ErrMatchNotFound) {
			return that.sendErrorResponse(conn, msg.Action, "match not found")
		}

		if errors.Is(err, apperror.ErrVariantNotSupported) {
			return that.sendErrorResponse(conn, msg.Action, "game variant is not supported yet")
		}

		log.Error("failed to make turn", "id", payloadReq.MatchID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to make turn")
	}

	return that.sendMessage(conn, msg.Action, Payload{Feedback: feedback, Match: match})
}

func (that *Server) handleMatchChoices(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMatchChoices")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.MatchID == "" {
		return that.sendErrorResponse(conn, msg.Action, "match_id is required")
	}

	choices, err := that.manager.SymbolChoices(ctx, payloadReq.MatchID, payloadReq.Player)
	if err != nil {
		if errors.Is(err, apperror.ErrUnknownPlayer) {
			return that.sendErrorResponse(conn, msg.Action, "unknown player")
		}

		if errors.Is(err, apperror.ErrMatchNotFound) {
			return that.sendErrorResponse(conn, msg.Action, "match not found")
		}

		log.Error("failed to get symbol choices", "id", payloadReq.MatchID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to get symbol choices")
	}

	return that.sendMessage(conn, msg.Action, Payload{Player: payloadReq.Player, Choices: choices})
}

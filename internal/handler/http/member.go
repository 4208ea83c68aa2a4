package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caibang/attendance-backend-go/internal/domain/member"
	"github.com/caibang/attendance-backend-go/internal/handler/http/response"
)

type MemberHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type memberHandlerImpl struct {
	memberService member.MemberService
}

func NewMemberHandler(memberService member.MemberService) MemberHandler {
	return &memberHandlerImpl{
		memberService: memberService,
	}
}

// Register implements MemberHandler.
func (h *memberHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req member.RegisterMemberRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.memberService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member profile saved", profile)
}

// List implements MemberHandler.
func (h *memberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := member.MemberFilter{
		Search: r.URL.Query().Get("search"),
		Group:  r.URL.Query().Get("group"),
	}

	members, err := h.memberService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List members error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

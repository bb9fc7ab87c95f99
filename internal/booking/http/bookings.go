package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ridewise/cabbook/internal/booking/domain"
	"github.com/ridewise/cabbook/internal/booking/service"
	"github.com/ridewise/cabbook/internal/booking/store"
	"github.com/ridewise/cabbook/pkg/httpx"
	"github.com/ridewise/cabbook/pkg/slogx"
)

type BookingsHandler struct {
	BookingService *service.BookingService
}

func identityFromCtx(r *http.Request) domain.Identity {
	ctx := r.Context()
	return domain.Identity{
		UserID:  httpx.UserIDFromCtx(ctx),
		IsAdmin: httpx.IsAdminFromCtx(ctx),
	}
}

// HandleCreate records a new booking owned by the caller.
func (h *BookingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req bookingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	ident := identityFromCtx(r)
	b, err := h.BookingService.CreateBooking(ctx, ident.UserID, service.BookingInput{
		TripType:      req.TripType,
		FromCity:      req.FromCity,
		ToCity:        req.ToCity,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		PickupTime:    req.PickupTime,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTripType) {
			httpx.WriteError(w, http.StatusBadRequest,
				"validation_error", "tripType must be one of one-way, round-trip, airport, hourly")
			return
		}
		log.Error("create booking failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newBookingResponse(b))
}

// HandleList returns bookings visible to the caller: admins get every
// booking with the owner's email, users only their own.
func (h *BookingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	bookings, err := h.BookingService.ListBookings(ctx, identityFromCtx(r))
	if err != nil {
		log.Error("list bookings failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	out := make([]bookingResponse, len(bookings))
	for i, bw := range bookings {
		out[i] = newBookingWithUserResponse(bw)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns a single booking the caller may see.
func (h *BookingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	b, err := h.BookingService.GetBooking(ctx, r.PathValue("id"), identityFromCtx(r))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "booking not found")
			return
		}
		log.Error("get booking failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newBookingResponse(b))
}

// HandleUpdateStatus moves a booking to a new status. Admin only.
func (h *BookingsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req bookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	b, err := h.BookingService.UpdateStatus(ctx, r.PathValue("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			httpx.WriteError(w, http.StatusBadRequest,
				"validation_error", "status must be one of pending, confirmed, completed, cancelled")
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "booking not found")
		default:
			log.Error("update booking failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newBookingResponse(b))
}

// HandleDelete removes a booking the caller owns, or any booking for an
// admin.
func (h *BookingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.BookingService.DeleteBooking(ctx, r.PathValue("id"), identityFromCtx(r))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "booking not found")
			return
		}
		log.Error("delete booking failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "booking removed"})
}

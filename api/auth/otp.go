package auth

import (
	"net/http"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleOTPRequest emails a one-time passcode. The response is the same
// whether or not delivery worked so the endpoint cannot be used to probe
// for registered addresses.
func (arm *AuthRoutesManager) HandleOTPRequest(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OTPRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	otp, err := lib.GenerateOTP()
	if err != nil {
		arm.logger.Error("Failed to generate OTP", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	if err := arm.tokenService.StoreOTP(r.Context(), body.Email, otp); err != nil {
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	if err := arm.emailService.SendOTPEmail(body.Email, otp); err != nil {
		arm.logger.Error("Failed to send OTP email", gecho.Field("error", err))
	}

	gecho.Success(w,
		gecho.WithMessage("If the address is valid, a code is on its way"),
		gecho.Send(),
	)
}

// HandleOTPVerify checks a submitted passcode
func (arm *AuthRoutesManager) HandleOTPVerify(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OTPVerifyRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	if err := arm.tokenService.VerifyOTP(r.Context(), body.Email, body.OTP); err != nil {
		handling.HandleError(err, "Invalid or expired code", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Code verified"),
		gecho.Send(),
	)
}

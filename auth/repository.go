package auth

import (
	"context"
	"errors"

	"travelflow/db"
)

const procGetLoginUser = "getLoginUser"

// ErrUserNotFound signals that no login exists for the mobile number.
var ErrUserNotFound = errors.New("auth: user not found")

// Repository handles data access for authentication.
type Repository interface {
	GetUserByMobile(ctx context.Context, mobile string) (User, error)
}

// ProcRepository reads logins through the procedure façade.
type ProcRepository struct {
	caller db.Caller
}

func NewRepository(caller db.Caller) *ProcRepository {
	return &ProcRepository{caller: caller}
}

func (r *ProcRepository) GetUserByMobile(ctx context.Context, mobile string) (User, error) {
	sets, err := r.caller.Call(ctx, procGetLoginUser, mobile)
	if err != nil {
		return User{}, err
	}
	row := sets.FirstRow()
	if row == nil {
		return User{}, ErrUserNotFound
	}

	return User{
		UID:          str(row["UId"]),
		AgentID:      str(row["AgentId"]),
		AgentCode:    str(row["Agent_Code"]),
		FullName:     str(row["FullName"]),
		Email:        str(row["EmailID"]),
		Mobile:       str(row["MobileNumber"]),
		Role:         Role(str(row["EMPType"])),
		PasswordHash: str(row["PasswordHash"]),
		Gender:       str(row["Gender"]),
		Approved:     str(row["Admin_Approved"]),
		Payout:       str(row["Payout"]),
		PaymentMode:  str(row["Paymentmode"]),
	}, nil
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelflow/auth"
	"travelflow/ayush"
	"travelflow/bajaj"
	"travelflow/provider"
)

func (s *Server) handleLogin(c *gin.Context) {
	var req auth.LoginRequest
	if err := bindJSON(c.Request, &req); err != nil {
		c.JSON(http.StatusOK, Failure("Invalid request body.", nil))
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrMissingCredentials) {
			c.JSON(http.StatusOK, Failure("Invalid mobile number or password.", nil))
			return
		}
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Format("Login successful", loginMasterData(result)))
}

// loginMasterData shapes the profile block by role: agents get the full
// commercial block, employees the short one.
func loginMasterData(result auth.LoginResult) gin.H {
	u := result.User
	data := gin.H{
		"UId":          u.UID,
		"FullName":     u.FullName,
		"EmailID":      u.Email,
		"MobileNumber": u.Mobile,
		"EMPType":      string(u.Role),
		"Token":        result.Token,
	}
	if u.Role == auth.RoleAgent {
		data["AgentId"] = u.AgentID
		data["Agent_Code"] = u.AgentCode
		data["Gender"] = u.Gender
		data["Admin_Approved"] = u.Approved
		data["Payout"] = u.Payout
		data["Paymentmode"] = u.PaymentMode
	}
	return data
}

func (s *Server) handleAyushCheckDuplicate(c *gin.Context) {
	var req ayush.DuplicateCheckRequest
	if err := bindJSON(c.Request, &req); err != nil {
		c.JSON(http.StatusOK, Failure("Mobile and Email are required for duplicate check.", nil))
		return
	}

	count, err := s.ayush.CheckDuplicate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ayush.ErrMissingDuplicateFields) {
			c.JSON(http.StatusOK, Failure("Mobile and Email are required for duplicate check.", nil))
			return
		}
		s.fail(c, err)
		return
	}

	if count > 0 {
		// Clients key off this exact shape: HTTP 200, Status and Message
		// both the literal "Failure", with the count still populated.
		c.JSON(http.StatusOK, Envelope{
			Message:    "Failure",
			Status:     statusFailure,
			StatusNo:   1,
			MasterData: gin.H{"DuplicateCount": count},
		})
		return
	}

	c.JSON(http.StatusOK, Format("User is unique. Proceed.", gin.H{"DuplicateCount": 0}))
}

func (s *Server) handleAyushCreateProposal(c *gin.Context) {
	var req ayush.ProposalRequest
	if err := bindJSON(c.Request, &req); err != nil {
		c.JSON(http.StatusOK, Failure("Missing required fields.", nil))
		return
	}

	result, err := s.ayush.CreateProposal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ayush.ErrMissingFields) {
			c.JSON(http.StatusOK, Failure("Missing required fields.", nil))
			return
		}
		s.fail(c, err)
		return
	}

	data := gin.H{
		"Ayush_ApplicationId": result.ApplicationID,
		"SubscriptionId":      result.SubscriptionID,
		"TransactionId":       result.TransactionID,
		"Amount":              result.Amount,
		"Details":             result.Details,
	}
	for k, v := range result.Row {
		data[k] = v
	}

	c.JSON(http.StatusOK, Format("Proposal created successfully.", data))
}

func (s *Server) handleAyushWalletUpdate(c *gin.Context) {
	var req ayush.WalletRequest
	if err := bindJSON(c.Request, &req); err != nil {
		c.JSON(http.StatusOK, Failure("AgentId, Selected_PremiumAmount, and Ayush_id are required.", nil))
		return
	}

	row, err := s.ayush.UpdateWallet(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ayush.ErrMissingWalletFields) {
			c.JSON(http.StatusOK, Failure("AgentId, Selected_PremiumAmount, and Ayush_id are required.", nil))
			return
		}
		s.fail(c, err)
		return
	}

	message := "Wallet payment processed successfully."
	if m, ok := row["message"].(string); ok && m != "" {
		message = m
	}

	c.JSON(http.StatusOK, Format(message, row))
}

func (s *Server) handleAyushPremium(c *gin.Context) {
	var req struct {
		AgentID string `json:"AgentId"`
	}
	if err := bindJSON(c.Request, &req); err != nil || req.AgentID == "" {
		c.JSON(http.StatusOK, Failure("AgentId is required.", nil))
		return
	}

	row, err := s.ayush.Premium(c.Request.Context(), req.AgentID)
	if err != nil {
		if errors.Is(err, ayush.ErrPremiumNotFound) {
			c.JSON(http.StatusOK, Failure("No details found for AgentId: "+req.AgentID, nil))
			return
		}
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Format("Premium details retrieved successfully.", row))
}

func (s *Server) handleBajajCalc(c *gin.Context) {
	var req bajaj.PlanRequest
	if err := bindJSON(c.Request, &req); err != nil {
		c.JSON(http.StatusOK, Failure("Invalid request body.", nil))
		return
	}

	result, err := s.bajaj.CalcPremium(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Format("Premium Calculated.", result))
}

func (s *Server) handleBajajIssue(c *gin.Context) {
	var req bajaj.PlanRequest
	if err := bindJSON(c.Request, &req); err != nil {
		c.JSON(http.StatusOK, Failure("AgentId and QuoteNo are required.", nil))
		return
	}

	result, err := s.bajaj.IssuePolicy(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, bajaj.ErrMissingIssueFields) {
			c.JSON(http.StatusOK, Failure("AgentId and QuoteNo are required.", nil))
			return
		}
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Format("Policy Issued Successfully.", result))
}

// fail translates any error into the uniform envelope. Provider failures keep
// the provider's own description verbatim; post-commit persistence failures
// carry the correlation identifiers so operators can reconcile manually.
func (s *Server) fail(c *gin.Context, err error) {
	s.log.ErrorContext(c.Request.Context(), "request failed",
		"request_id", c.GetString("request_id"),
		"path", c.Request.URL.Path,
		"err", err)

	var pe *provider.Error
	if errors.As(err, &pe) {
		var data any
		if len(pe.Payload) > 0 {
			data = pe.Payload
		}
		c.JSON(http.StatusOK, Failure(pe.Message, data))
		return
	}

	c.JSON(http.StatusOK, Failure("Internal Server Error", nil))
}

package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/store"
)

type PaymentBillController struct {
	store *store.Store
}

func NewPaymentBillController(st *store.Store) *PaymentBillController {
	return &PaymentBillController{store: st}
}

type paymentBillRequest struct {
	SenderName      string       `json:"senderName" binding:"required"`
	SenderBank      string       `json:"senderBank" binding:"required"`
	SenderAccount   string       `json:"senderAccount" binding:"required"`
	ReceiverName    string       `json:"receiverName" binding:"required"`
	ReceiverBank    string       `json:"receiverBank" binding:"required"`
	ReceiverAccount string       `json:"receiverAccount" binding:"required"`
	Date            string       `json:"date" binding:"required"`
	Amount          models.Money `json:"amount" binding:"required"`
}

func (c *PaymentBillController) AddPaymentBill(ctx *gin.Context) {
	var body paymentBillRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Please provide all the required fields")
		return
	}

	bill := models.PaymentBill{
		SenderName:      body.SenderName,
		SenderBank:      body.SenderBank,
		SenderAccount:   body.SenderAccount,
		ReceiverName:    body.ReceiverName,
		ReceiverBank:    body.ReceiverBank,
		ReceiverAccount: body.ReceiverAccount,
		Date:            body.Date,
		Amount:          body.Amount,
	}
	if err := c.store.InsertPaymentBill(ctx.Request.Context(), &bill); err != nil {
		log.Println("Failed to create payment bill:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create payment bill")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Payment bill created successfully",
		"data":    bill,
	})
}

func (c *PaymentBillController) GetPaymentBills(ctx *gin.Context) {
	bills, err := c.store.FindAllPaymentBills(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to fetch payment bills:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch payment bills")
		return
	}
	if bills == nil {
		bills = []models.PaymentBill{}
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": bills})
}

func (c *PaymentBillController) GetPaymentBillByID(ctx *gin.Context) {
	billID, ok := parseObjectID(ctx, ctx.Param("id"), "payment bill ID")
	if !ok {
		return
	}

	bill, err := c.store.FindPaymentBillByID(ctx.Request.Context(), billID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Payment bill not found")
		} else {
			log.Println("Failed to fetch payment bill:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch payment bill")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": bill})
}

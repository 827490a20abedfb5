package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grazy/inventoryapp/internal/contract"
	"github.com/grazy/inventoryapp/internal/inspect"
)

// TypeResponse is returned by the MIME type lookup.
type TypeResponse struct {
	URI   string `json:"uri"`
	Match string `json:"match"`
	ID    *int64 `json:"id,omitempty"`
	Type  string `json:"type"`
}

// VerifyResponse is returned by the database verification endpoint.
type VerifyResponse struct {
	Status   string                 `json:"status"`
	Database string                 `json:"database"`
	Mismatch *inspect.MismatchError `json:"mismatch,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

type ContractController struct {
	databasePath string
	verify       func(path string) error
}

func NewContractController(databasePath string) *ContractController {
	return &ContractController{
		databasePath: databasePath,
		verify:       inspect.Verify,
	}
}

func (cc *ContractController) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, contract.Describe())
}

func (cc *ContractController) Columns(c *gin.Context) {
	c.JSON(http.StatusOK, contract.ColumnSpecs())
}

func (cc *ContractController) Schema(c *gin.Context) {
	c.String(http.StatusOK, contract.CreateTableSQL()+"\n")
}

func (cc *ContractController) Type(c *gin.Context) {
	uri := c.Query("uri")
	if uri == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uri query parameter is required"})
		return
	}

	m, err := contract.MatchURI(uri)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, contract.ErrUnknownURI) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := TypeResponse{URI: uri, Match: m.Kind.String(), Type: contract.ContentListType}
	if m.Kind == contract.MatchBookID {
		id := m.ID
		resp.ID = &id
		resp.Type = contract.ContentItemType
	}
	c.JSON(http.StatusOK, resp)
}

func (cc *ContractController) Verify(c *gin.Context) {
	if cc.databasePath == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database path not configured"})
		return
	}

	err := cc.verify(cc.databasePath)
	resp := VerifyResponse{Status: "ok", Database: cc.databasePath}

	var mismatch *inspect.MismatchError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.As(err, &mismatch):
		resp.Status = "mismatch"
		resp.Mismatch = mismatch
		resp.Error = err.Error()
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, inspect.ErrTableMissing):
		resp.Status = "mismatch"
		resp.Error = err.Error()
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, inspect.ErrDatabaseNotFound):
		resp.Status = "missing"
		resp.Error = err.Error()
		c.JSON(http.StatusNotFound, resp)
	default:
		resp.Status = "error"
		resp.Error = err.Error()
		c.JSON(http.StatusInternalServerError, resp)
	}
}

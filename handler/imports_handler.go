package handler

import (
	"log"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func stageUpload(c *gin.Context, importsService *usecase.ImportsService, kind model.ImportKind) {
	userID := c.GetString("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "No file was uploaded")
		return
	}

	// Both checks run before a single byte of the file is read
	if file.Size > usecase.MaxUploadSize {
		utils.PayloadTooLarge(c, "File exceeds the 10MB upload limit")
		return
	}
	if !usecase.AllowedUploadType(file.Filename, file.Header.Get("Content-Type")) {
		utils.BadRequest(c, "Unsupported file type; upload a .csv, .xls or .xlsx file")
		return
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("Error opening upload %q: %v", file.Filename, err)
		utils.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer src.Close()

	deviceInfo := utils.DeviceSummary(c.Request.UserAgent())
	ipAddress := c.ClientIP()

	var batch *model.ImportBatch
	switch kind {
	case model.ImportExpenses:
		batch, err = importsService.StageExpenses(userID, file.Filename, file.Size, src, deviceInfo, ipAddress)
	default:
		batch, err = importsService.StageReservations(userID, file.Filename, file.Size, src, deviceInfo, ipAddress)
	}
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, dto.ToImportBatchResponse(batch))
}

// UploadExpensesHandler stages an expense CSV for preview.
func UploadExpensesHandler(c *gin.Context, importsService *usecase.ImportsService) {
	stageUpload(c, importsService, model.ImportExpenses)
}

// UploadReservationsHandler stages a reservation CSV for preview.
func UploadReservationsHandler(c *gin.Context, importsService *usecase.ImportsService) {
	stageUpload(c, importsService, model.ImportReservations)
}

// ListImportsHandler lists the user's batches without row payloads.
func ListImportsHandler(c *gin.Context, importsService *usecase.ImportsService) {
	userID := c.GetString("user_id")

	batches, err := importsService.ListBatches(userID)
	if err != nil {
		utils.InternalError(c, "Failed to list import batches")
		return
	}

	utils.Success(c, dto.ToImportBatchResponses(batches))
}

// GetImportHandler returns one batch with its preview rows and row errors.
func GetImportHandler(c *gin.Context, importsService *usecase.ImportsService) {
	userID := c.GetString("user_id")

	batch, err := importsService.GetBatch(userID, c.Param("id"))
	if err != nil {
		utils.NotFound(c, err.Error())
		return
	}

	utils.Success(c, dto.ToImportBatchResponse(batch))
}

// CommitImportHandler forwards a staged batch's valid rows to the core.
func CommitImportHandler(c *gin.Context, importsService *usecase.ImportsService) {
	userID := c.GetString("user_id")
	token := c.GetString("core_token")

	batch, err := importsService.Commit(c.Request.Context(), token, userID, c.Param("id"))
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, dto.ToImportBatchResponse(batch))
}

// DiscardImportHandler drops a staged batch.
func DiscardImportHandler(c *gin.Context, importsService *usecase.ImportsService) {
	userID := c.GetString("user_id")

	if err := importsService.Discard(userID, c.Param("id")); err != nil {
		utils.NotFound(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Import batch discarded"})
}

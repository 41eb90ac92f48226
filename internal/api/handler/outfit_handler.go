package handler

import (
	"Dresscode/internal/pkg/response"
	"Dresscode/internal/pkg/util"
	"Dresscode/internal/service"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 原图大小上限 10MB
const maxOutfitImageSize = 10 << 20

type OutfitHandler struct {
	outfitSvc   service.OutfitService
	analysisSvc service.AnalysisService
}

func NewOutfitHandler(outfitSvc service.OutfitService, analysisSvc service.AnalysisService) *OutfitHandler {
	return &OutfitHandler{
		outfitSvc:   outfitSvc,
		analysisSvc: analysisSvc,
	}
}

// Upload 上传穿搭图并同步返回评分
func (s *OutfitHandler) Upload(c *gin.Context) {
	userID := c.GetUint64("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if file.Size > maxOutfitImageSize {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	location := c.PostForm("location")

	result, err := s.outfitSvc.UploadOutfit(c.Request.Context(), userID, data, contentType, location)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *OutfitHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 30
	}

	outfits, err := s.outfitSvc.GetOutfits(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, outfits)
}

func (s *OutfitHandler) Get(c *gin.Context) {
	userID := c.GetUint64("user_id")

	seqNo, err := strconv.ParseUint(c.Param("seq_no"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	outfit, err := s.outfitSvc.GetOutfit(c.Request.Context(), userID, seqNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, outfit)
}

// GetAnalysis 查询或懒生成穿搭分析，免费用户拿到 null
func (s *OutfitHandler) GetAnalysis(c *gin.Context) {
	userID := c.GetUint64("user_id")

	seqNo, err := strconv.ParseUint(c.Param("seq_no"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	analysis, err := s.analysisSvc.GetStyleAnalysis(c.Request.Context(), userID, seqNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analysis)
}

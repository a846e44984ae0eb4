package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processLoadDayReq(c *gin.Context) (loadDayReq, error) {
	var req loadDayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCompleteTaskReq(c *gin.Context) (completeTaskReq, error) {
	var req completeTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processDurationReq(c *gin.Context) (durationReq, error) {
	var req durationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processMoveTaskReq(c *gin.Context) (moveTaskReq, error) {
	var req moveTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processEditTaskReq(c *gin.Context) (editTaskReq, error) {
	var req editTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAssignProjectReq(c *gin.Context) (assignProjectReq, error) {
	var req assignProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAddLinkReq(c *gin.Context) (addLinkReq, error) {
	var req addLinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

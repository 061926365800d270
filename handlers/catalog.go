package handlers

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// CreateDepartment handles department creation
//
//	@Summary		Create department
//	@Description	Create a department with a unique code
//	@Tags			Catalog
//	@ID				create_department
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateDepartmentReq					true	"Department creation request"
//	@Success		201		{object}	dto.APIResponse[dto.DepartmentResp]		"Department created"
//	@Failure		400		{object}	dto.APIResponse[any]					"Invalid request or code taken"
//	@Failure		500		{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/departments [post]
func CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateDepartment(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Department created", resp)
}

// ListDepartments handles the paginated department list
//
//	@Summary		List departments
//	@Description	List departments with pagination and search
//	@Tags			Catalog
//	@ID				list_departments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber	query	int		false	"Page number (default 1)"
//	@Param			pageSize	query	int		false	"Page size (default 10, max 100)"
//	@Param			searchTerm	query	string	false	"Substring match over code and name"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.DepartmentResp]]	"Department page"
//	@Failure		500	{object}	dto.APIResponse[any]									"Internal server error"
//	@Router			/api/v1/departments [get]
func ListDepartments(c *gin.Context) {
	var req dto.PaginationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListDepartments(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Departments retrieved", resp)
}

// UpdateDepartment handles a partial department update
//
//	@Summary		Update department
//	@Description	Apply a partial update; omitted fields stay unchanged
//	@Tags			Catalog
//	@ID				update_department
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int									true	"Department ID"
//	@Param			request	body		dto.UpdateDepartmentReq				true	"Partial update"
//	@Success		200		{object}	dto.APIResponse[dto.DepartmentResp]	"Department updated"
//	@Failure		404		{object}	dto.APIResponse[any]				"Department not found"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/departments/{id} [put]
func UpdateDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateDepartment(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Department updated", resp)
}

// DeleteDepartment handles department deletion
//
//	@Summary		Delete department
//	@Description	Delete a department that has no majors left
//	@Tags			Catalog
//	@ID				delete_department
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Department ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Department deleted"
//	@Failure		400	{object}	dto.APIResponse[any]	"Department still has majors"
//	@Failure		404	{object}	dto.APIResponse[any]	"Department not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/departments/{id} [delete]
func DeleteDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteDepartment(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Department deleted", nil)
}

// CreateMajor handles major creation
//
//	@Summary		Create major
//	@Description	Create a major within a department
//	@Tags			Catalog
//	@ID				create_major
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateMajorReq				true	"Major creation request"
//	@Success		201		{object}	dto.APIResponse[dto.MajorResp]	"Major created"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request or code taken"
//	@Failure		404		{object}	dto.APIResponse[any]			"Department not found"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/majors [post]
func CreateMajor(c *gin.Context) {
	var req dto.CreateMajorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateMajor(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Major created", resp)
}

// ListMajors handles the paginated major list
//
//	@Summary		List majors
//	@Description	List majors with pagination, search and department filter
//	@Tags			Catalog
//	@ID				list_majors
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber		query	int		false	"Page number (default 1)"
//	@Param			pageSize		query	int		false	"Page size (default 10, max 100)"
//	@Param			searchTerm		query	string	false	"Substring match over code and name"
//	@Param			departmentId	query	int		false	"Filter by department"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.MajorResp]]	"Major page"
//	@Failure		500	{object}	dto.APIResponse[any]							"Internal server error"
//	@Router			/api/v1/majors [get]
func ListMajors(c *gin.Context) {
	var req dto.ListMajorReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListMajors(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Majors retrieved", resp)
}

// UpdateMajor handles a partial major update
//
//	@Summary		Update major
//	@Description	Apply a partial update; omitted fields stay unchanged
//	@Tags			Catalog
//	@ID				update_major
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Major ID"
//	@Param			request	body		dto.UpdateMajorReq				true	"Partial update"
//	@Success		200		{object}	dto.APIResponse[dto.MajorResp]	"Major updated"
//	@Failure		404		{object}	dto.APIResponse[any]			"Major not found"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/majors/{id} [put]
func UpdateMajor(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateMajorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateMajor(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Major updated", resp)
}

// DeleteMajor handles major deletion
//
//	@Summary		Delete major
//	@Description	Delete a major; courses keep their historical reference
//	@Tags			Catalog
//	@ID				delete_major
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Major ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Major deleted"
//	@Failure		404	{object}	dto.APIResponse[any]	"Major not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/majors/{id} [delete]
func DeleteMajor(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteMajor(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Major deleted", nil)
}

// CreateAcademicYear handles academic year creation
//
//	@Summary		Create academic year
//	@Description	Create an academic year with validated date bounds
//	@Tags			Catalog
//	@ID				create_academic_year
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateAcademicYearReq				true	"Academic year creation request"
//	@Success		201		{object}	dto.APIResponse[dto.AcademicYearResp]	"Academic year created"
//	@Failure		400		{object}	dto.APIResponse[any]					"Invalid dates or code taken"
//	@Failure		500		{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/academic-years [post]
func CreateAcademicYear(c *gin.Context) {
	var req dto.CreateAcademicYearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateAcademicYear(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Academic year created", resp)
}

// ListAcademicYears handles the paginated academic year list
//
//	@Summary		List academic years
//	@Description	List academic years newest first with pagination
//	@Tags			Catalog
//	@ID				list_academic_years
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber	query	int		false	"Page number (default 1)"
//	@Param			pageSize	query	int		false	"Page size (default 10, max 100)"
//	@Param			searchTerm	query	string	false	"Substring match over code"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.AcademicYearResp]]	"Academic year page"
//	@Failure		500	{object}	dto.APIResponse[any]									"Internal server error"
//	@Router			/api/v1/academic-years [get]
func ListAcademicYears(c *gin.Context) {
	var req dto.PaginationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListAcademicYears(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Academic years retrieved", resp)
}

// UpdateAcademicYear handles a partial academic year update
//
//	@Summary		Update academic year
//	@Description	Update the code or date bounds of an academic year
//	@Tags			Catalog
//	@ID				update_academic_year
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int										true	"Academic year ID"
//	@Param			request	body		dto.UpdateAcademicYearReq				true	"Academic year update request"
//	@Success		200		{object}	dto.APIResponse[dto.AcademicYearResp]	"Academic year updated"
//	@Failure		400		{object}	dto.APIResponse[any]					"Invalid dates or code taken"
//	@Failure		404		{object}	dto.APIResponse[any]					"Academic year not found"
//	@Failure		500		{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/academic-years/{id} [put]
func UpdateAcademicYear(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateAcademicYearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateAcademicYear(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Academic year updated", resp)
}

// DeleteAcademicYear handles academic year deletion
//
//	@Summary		Delete academic year
//	@Description	Delete an academic year that has no semesters left
//	@Tags			Catalog
//	@ID				delete_academic_year
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Academic year ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Academic year deleted"
//	@Failure		400	{object}	dto.APIResponse[any]	"Academic year still has semesters"
//	@Failure		404	{object}	dto.APIResponse[any]	"Academic year not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/academic-years/{id} [delete]
func DeleteAcademicYear(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteAcademicYear(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Academic year deleted", nil)
}

// CreateSemester handles semester creation
//
//	@Summary		Create semester
//	@Description	Create a term within an academic year; one row per year and term
//	@Tags			Catalog
//	@ID				create_semester
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateSemesterReq				true	"Semester creation request"
//	@Success		201		{object}	dto.APIResponse[dto.SemesterResp]	"Semester created"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid term, dates out of bounds or term taken"
//	@Failure		404		{object}	dto.APIResponse[any]				"Academic year not found"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/semesters [post]
func CreateSemester(c *gin.Context) {
	var req dto.CreateSemesterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateSemester(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Semester created", resp)
}

// ListSemesters handles the paginated semester list
//
//	@Summary		List semesters
//	@Description	List semesters with pagination and academic year filter
//	@Tags			Catalog
//	@ID				list_semesters
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber		query	int	false	"Page number (default 1)"
//	@Param			pageSize		query	int	false	"Page size (default 10, max 100)"
//	@Param			academicYearId	query	int	false	"Filter by academic year"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.SemesterResp]]	"Semester page"
//	@Failure		500	{object}	dto.APIResponse[any]								"Internal server error"
//	@Router			/api/v1/semesters [get]
func ListSemesters(c *gin.Context) {
	var req dto.ListSemesterReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListSemesters(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Semesters retrieved", resp)
}

// UpdateSemester handles a partial semester update
//
//	@Summary		Update semester
//	@Description	Update the term or date bounds of a semester
//	@Tags			Catalog
//	@ID				update_semester
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int									true	"Semester ID"
//	@Param			request	body		dto.UpdateSemesterReq				true	"Semester update request"
//	@Success		200		{object}	dto.APIResponse[dto.SemesterResp]	"Semester updated"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid term, dates out of bounds or term taken"
//	@Failure		404		{object}	dto.APIResponse[any]				"Semester not found"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/semesters/{id} [put]
func UpdateSemester(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateSemesterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.UpdateSemester(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Semester updated", resp)
}

// DeleteSemester handles semester deletion
//
//	@Summary		Delete semester
//	@Description	Delete a semester that has no courses scheduled in it
//	@Tags			Catalog
//	@ID				delete_semester
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Semester ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Semester deleted"
//	@Failure		400	{object}	dto.APIResponse[any]	"Semester still has courses"
//	@Failure		404	{object}	dto.APIResponse[any]	"Semester not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/semesters/{id} [delete]
func DeleteSemester(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteSemester(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Semester deleted", nil)
}

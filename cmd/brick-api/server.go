package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/protein"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/seq"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/pdb"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/uniprot"
)

const requestIdHeader = "X-Request-Id"

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller controller
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	parts := r.Group("/parts/:id")
	parts.GET("", s.Summary)
	parts.GET("/attributes", s.Attribute)
	parts.GET("/protein", s.Translate)
	parts.GET("/uniprot", s.UniProt)
	parts.GET("/structures", s.Structures)
	parts.GET("/structures/:n", s.StructureFile)
	parts.GET("/go", s.GOAnnotations)
	parts.GET("/models", s.RelatedModels)
}

func (s server) Summary(c *gin.Context) {
	summary, err := s.controller.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s server) Attribute(c *gin.Context) {
	path, ok := c.GetQuery("path")
	if !ok {
		handleError(c, NewHttpError(http.StatusBadRequest, errors.New("you must set the path query parameter")))
		return
	}

	a, err := s.controller.Attribute(c.Request.Context(), c.Param("id"), path)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s server) Translate(c *gin.Context) {
	id, err := intQuery(c, "table", seq.Standard.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	table, err := seq.TableByID(id)
	if err != nil {
		handleError(c, NewHttpError(http.StatusBadRequest, err))
		return
	}

	toStop := c.Query("to_stop") == "true"

	t, err := s.controller.Translate(c.Request.Context(), c.Param("id"), table, toStop)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s server) UniProt(c *gin.Context) {
	format, err := uniprot.ParseFormat(c.DefaultQuery("format", string(uniprot.Text)))
	if err != nil {
		handleError(c, NewHttpError(http.StatusBadRequest, err))
		return
	}

	b, err := s.controller.UniProt(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain", b)
}

func (s server) Structures(c *gin.Context) {
	if c.Query("count") == "true" {
		count, err := s.controller.StructureCount(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, count)
		return
	}

	ids, err := s.controller.Structures(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (s server) StructureFile(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		handleError(c, NewHttpError(http.StatusBadRequest, fmt.Errorf("invalid structure number %q", c.Param("n"))))
		return
	}
	format, err := pdb.ParseFormat(c.DefaultQuery("format", string(pdb.PDB)))
	if err != nil {
		handleError(c, NewHttpError(http.StatusBadRequest, err))
		return
	}

	b, err := s.controller.StructureFile(c.Request.Context(), c.Param("id"), n, format)
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain", b)
}

func (s server) GOAnnotations(c *gin.Context) {
	annotations, err := s.controller.GOAnnotations(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, annotations)
}

func (s server) RelatedModels(c *gin.Context) {
	term, err := intQuery(c, "term", 0)
	if err != nil {
		handleError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", 100)
	if err != nil {
		handleError(c, err)
		return
	}

	related, err := s.controller.RelatedModels(c.Request.Context(), c.Param("id"), term, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, related)
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, NewHttpError(http.StatusBadRequest, fmt.Errorf("invalid %s query parameter %q - must be an integer", key, v))
	}
	return i, nil
}

func requestId(c *gin.Context) {
	id := c.GetHeader(requestIdHeader)
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(lib.RequestIdKey, id)
	c.Header(requestIdHeader, id)
	c.Next()
}

// statusCode maps errors from the domain packages onto http status codes.
func statusCode(err error) int {
	var statusErr *services.StatusError
	var urlErr *url.Error
	switch {
	case errors.Is(err, registry.ErrPartNotFound),
		errors.Is(err, registry.ErrAttributeAbsent),
		errors.Is(err, registry.ErrNoUniProtID):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrInvalidPath),
		errors.Is(err, protein.ErrStructureIndex),
		errors.Is(err, protein.ErrTermIndex),
		errors.Is(err, uniprot.ErrInvalidLimit):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrUnavailable),
		errors.As(err, &statusErr),
		errors.As(err, &urlErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
		return
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		abort(c, statusCode(e), e)
	}
}

func abort(c *gin.Context, code int, err error) {
	if code >= 500 {
		log.Error().Err(err).Int("status", code).Str(lib.RequestIdKey, c.GetString(lib.RequestIdKey)).Msg("request failed")
	}
	_ = c.Error(err)
	c.JSON(code, map[string]interface{}{
		"status":  code,
		"message": err.Error(),
	})
	c.Abort()
}

package handler

type enrollRequest struct {
	CursoID  string `json:"cursoId" validate:"required"`
	AlumnoID string `json:"alumnoId" validate:"required"`
}

type updateProgressRequest struct {
	Progreso *int    `json:"progreso" validate:"omitempty,gte=0,lte=100"`
	Estado   *string `json:"estado" validate:"omitempty,oneof=activo completado cancelado"`
}

package handler

type createCourseRequest struct {
	Titulo      string `json:"titulo" validate:"required"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	Duracion    int    `json:"duracion" validate:"omitempty,gte=0"`
	Nivel       string `json:"nivel" validate:"omitempty,oneof=principiante intermedio avanzado"`
}

type updateCourseRequest struct {
	Titulo      *string `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	Imagen      *string `json:"imagen"`
	Duracion    *int    `json:"duracion" validate:"omitempty,gte=0"`
	Nivel       *string `json:"nivel" validate:"omitempty,oneof=principiante intermedio avanzado"`
	Activo      *bool   `json:"activo"`
}

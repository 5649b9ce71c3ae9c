package memory

import "construction-cost-app/internal/modules/construction/domain/entity"

func clonePtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneProject(p entity.Project) entity.Project {
	p.Description = clonePtr(p.Description)
	p.EndDate = clonePtr(p.EndDate)
	return p
}

func cloneTask(t entity.Task) entity.Task {
	return t
}

func cloneMaterial(m entity.Material) entity.Material {
	m.PurchaseDate = clonePtr(m.PurchaseDate)
	return m
}

func cloneWorker(w entity.Worker) entity.Worker {
	w.StartDate = clonePtr(w.StartDate)
	w.EndDate = clonePtr(w.EndDate)
	return w
}

func cloneOtherExpense(e entity.OtherExpense) entity.OtherExpense {
	e.Description = clonePtr(e.Description)
	e.ExpenseDate = clonePtr(e.ExpenseDate)
	return e
}

func clonePhoto(p entity.ProjectPhoto) entity.ProjectPhoto {
	p.Description = clonePtr(p.Description)
	return p
}

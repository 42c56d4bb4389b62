package views

import (
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Screens", "Mount, read, retarget and unmount screens. A mounted screen loads its content in the background, poll it or pass wait=true to block until it settled."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/screens",
		OpId:    "mount_screen",
		Method:  uapi.POST,
		Docs:    MountScreenDocs,
		Handler: MountScreen,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}",
		OpId:    "get_screen",
		Method:  uapi.GET,
		Docs:    GetScreenDocs,
		Handler: GetScreen,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}",
		OpId:    "retarget_screen",
		Method:  uapi.PATCH,
		Docs:    RetargetScreenDocs,
		Handler: RetargetScreen,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}",
		OpId:    "unmount_screen",
		Method:  uapi.DELETE,
		Docs:    UnmountScreenDocs,
		Handler: UnmountScreen,
	}.Route(r)
}

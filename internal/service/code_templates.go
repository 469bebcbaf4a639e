package service

// Plantillas JS estaticas que se devuelven verbatim cuando el prompt
// matchea una palabra clave. Son payloads de datos, no codigo del
// servicio.
var codeTemplates = map[string]string{
	"gravity": `
// AI-Generated: Gravity Physics System
const gravitySystem = {
    enabled: true,
    strength: -9.81,
    objects: [],

    addObject: function(mesh, mass = 1) {
        if (!mesh.physics) {
            mesh.physics = {
                velocity: new THREE.Vector3(0, 0, 0),
                mass: mass,
                grounded: false
            };
        }
        this.objects.push(mesh);
    },

    update: function() {
        if (!this.enabled) return;

        this.objects.forEach(obj => {
            if (obj.physics) {
                // Apply gravity
                obj.physics.velocity.y += this.strength * 0.001;

                // Update position
                obj.position.add(obj.physics.velocity);

                // Ground collision
                if (obj.position.y <= 0.5) {
                    obj.position.y = 0.5;
                    obj.physics.velocity.y *= -0.8; // Bounce
                    obj.physics.grounded = true;
                } else {
                    obj.physics.grounded = false;
                }
            }
        });
    },

    toggle: function() {
        this.enabled = !this.enabled;
    }
};

// Add gravity to existing meshes
meshObjects.forEach(mesh => gravitySystem.addObject(mesh));

// Update gravity in animation loop
function updateGravity() {
    gravitySystem.update();
    requestAnimationFrame(updateGravity);
}
updateGravity();
`,

	"draggable": `
// AI-Generated: Draggable Objects System
const dragSystem = {
    raycaster: new THREE.Raycaster(),
    mouse: new THREE.Vector2(),
    dragObject: null,
    dragPlane: new THREE.Plane(),
    offset: new THREE.Vector3(),

    init: function() {
        const canvas = document.getElementById('meshCanvas');
        canvas.addEventListener('mousedown', this.onMouseDown.bind(this));
        canvas.addEventListener('mousemove', this.onMouseMove.bind(this));
        canvas.addEventListener('mouseup', this.onMouseUp.bind(this));
    },

    onMouseDown: function(event) {
        const rect = event.target.getBoundingClientRect();
        this.mouse.x = ((event.clientX - rect.left) / rect.width) * 2 - 1;
        this.mouse.y = -((event.clientY - rect.top) / rect.height) * 2 + 1;

        this.raycaster.setFromCamera(this.mouse, camera);
        const intersects = this.raycaster.intersectObjects(meshObjects);

        if (intersects.length > 0) {
            this.dragObject = intersects[0].object;
            this.dragPlane.setFromNormalAndCoplanarPoint(camera.getWorldDirection(new THREE.Vector3()), intersects[0].point);
            this.offset.copy(intersects[0].point).sub(this.dragObject.position);
        }
    },

    onMouseMove: function(event) {
        if (!this.dragObject) return;

        const rect = event.target.getBoundingClientRect();
        this.mouse.x = ((event.clientX - rect.left) / rect.width) * 2 - 1;
        this.mouse.y = -((event.clientY - rect.top) / rect.height) * 2 + 1;

        this.raycaster.setFromCamera(this.mouse, camera);
        const intersection = new THREE.Vector3();
        this.raycaster.ray.intersectPlane(this.dragPlane, intersection);

        if (intersection) {
            this.dragObject.position.copy(intersection.sub(this.offset));
        }
    },

    onMouseUp: function(event) {
        this.dragObject = null;
    }
};

dragSystem.init();
`,

	"particles": `
// AI-Generated: Particle System
class ParticleSystem {
    constructor(position = new THREE.Vector3(0, 5, 0)) {
        this.particles = [];
        this.position = position;
        this.init();
    }

    init() {
        const geometry = new THREE.BufferGeometry();
        const positions = [];
        const colors = [];
        const velocities = [];

        const particleCount = 1000;

        for (let i = 0; i < particleCount; i++) {
            // Position
            positions.push(
                this.position.x + (Math.random() - 0.5) * 2,
                this.position.y + Math.random() * 2,
                this.position.z + (Math.random() - 0.5) * 2
            );

            // Color
            const color = new THREE.Color();
            color.setHSL(Math.random(), 0.7, 0.5);
            colors.push(color.r, color.g, color.b);

            // Velocity
            velocities.push(
                (Math.random() - 0.5) * 0.02,
                Math.random() * 0.02,
                (Math.random() - 0.5) * 0.02
            );
        }

        geometry.setAttribute('position', new THREE.Float32BufferAttribute(positions, 3));
        geometry.setAttribute('color', new THREE.Float32BufferAttribute(colors, 3));
        geometry.setAttribute('velocity', new THREE.Float32BufferAttribute(velocities, 3));

        const material = new THREE.PointsMaterial({
            size: 0.05,
            vertexColors: true,
            transparent: true,
            opacity: 0.8
        });

        this.system = new THREE.Points(geometry, material);
        scene.add(this.system);

        this.animate();
    }

    animate() {
        const positions = this.system.geometry.attributes.position.array;
        const velocities = this.system.geometry.attributes.velocity.array;

        for (let i = 0; i < positions.length; i += 3) {
            positions[i] += velocities[i];
            positions[i + 1] += velocities[i + 1];
            positions[i + 2] += velocities[i + 2];

            // Reset particles that fall too low
            if (positions[i + 1] < -5) {
                positions[i + 1] = this.position.y + Math.random() * 2;
            }
        }

        this.system.geometry.attributes.position.needsUpdate = true;
        requestAnimationFrame(() => this.animate());
    }
}

const particleSystem = new ParticleSystem();
`,

	"lighting": `
// AI-Generated: Dynamic Lighting System
const lightingSystem = {
    lights: [],

    init: function() {
        // Remove existing lights except ambient
        scene.children = scene.children.filter(child =>
            !(child instanceof THREE.DirectionalLight || child instanceof THREE.SpotLight)
        );

        // Add dynamic point lights
        const colors = [0xff0040, 0x0040ff, 0x40ff00, 0xff4000];

        for (let i = 0; i < 4; i++) {
            const light = new THREE.PointLight(colors[i], 1, 10);
            light.position.set(
                Math.cos(i * Math.PI / 2) * 3,
                2,
                Math.sin(i * Math.PI / 2) * 3
            );

            // Add light helper
            const helper = new THREE.PointLightHelper(light, 0.3);
            scene.add(light);
            scene.add(helper);

            this.lights.push({ light, helper, angle: i * Math.PI / 2 });
        }

        this.animate();
    },

    animate: function() {
        this.lights.forEach((lightObj, index) => {
            lightObj.angle += 0.02;
            lightObj.light.position.set(
                Math.cos(lightObj.angle) * 3,
                2 + Math.sin(lightObj.angle * 2) * 0.5,
                Math.sin(lightObj.angle) * 3
            );
            lightObj.helper.update();
        });

        requestAnimationFrame(() => this.animate());
    }
};

lightingSystem.init();
`,

	"collision": `
// AI-Generated: Collision Detection System
const collisionSystem = {
    objects: [],

    addObject: function(mesh, type = 'sphere') {
        if (!mesh.collision) {
            mesh.collision = {
                type: type,
                radius: this.getBoundingRadius(mesh),
                onCollision: null
            };
        }
        this.objects.push(mesh);
    },

    getBoundingRadius: function(mesh) {
        const box = new THREE.Box3().setFromObject(mesh);
        return box.getSize(new THREE.Vector3()).length() / 2;
    },

    checkCollisions: function() {
        for (let i = 0; i < this.objects.length; i++) {
            for (let j = i + 1; j < this.objects.length; j++) {
                const objA = this.objects[i];
                const objB = this.objects[j];

                const distance = objA.position.distanceTo(objB.position);
                const minDistance = objA.collision.radius + objB.collision.radius;

                if (distance < minDistance) {
                    this.handleCollision(objA, objB);
                }
            }
        }
    },

    handleCollision: function(objA, objB) {
        // Simple collision response
        const direction = new THREE.Vector3().subVectors(objB.position, objA.position).normalize();
        const force = 0.1;

        if (objA.physics) {
            objA.physics.velocity.add(direction.clone().multiplyScalar(-force));
        }
        if (objB.physics) {
            objB.physics.velocity.add(direction.clone().multiplyScalar(force));
        }

        // Visual feedback
        objA.material.color.setHex(0xff0000);
        objB.material.color.setHex(0xff0000);

        setTimeout(() => {
            objA.material.color.setHex(0x00ff00);
            objB.material.color.setHex(0x00ff00);
        }, 200);

        // Trigger callbacks
        if (objA.collision.onCollision) objA.collision.onCollision(objB);
        if (objB.collision.onCollision) objB.collision.onCollision(objA);
    },

    update: function() {
        this.checkCollisions();
        requestAnimationFrame(() => this.update());
    }
};

// Add collision to existing meshes
meshObjects.forEach(mesh => collisionSystem.addObject(mesh));
collisionSystem.update();
`,

	"cube": `
// AI-Generated: Create a rotating cube
const geometry = new THREE.BoxGeometry(1, 1, 1);
const material = new THREE.MeshPhongMaterial({ color: Math.random() * 0xffffff });
const cube = new THREE.Mesh(geometry, material);
cube.position.set(Math.random() * 4 - 2, 1, Math.random() * 4 - 2);
scene.add(cube);
meshObjects.push(cube);

// Add rotation animation
function animateCube() {
    cube.rotation.x += 0.01;
    cube.rotation.y += 0.01;
    requestAnimationFrame(animateCube);
}
animateCube();
`,
}

// keywordRules define el orden de prioridad del match por substring.
// La primera coincidencia gana.
var keywordRules = []struct {
	keywords []string
	template string
}{
	{[]string{"gravity"}, "gravity"},
	{[]string{"drag"}, "draggable"},
	{[]string{"particle"}, "particles"},
	{[]string{"light"}, "lighting"},
	{[]string{"collision"}, "collision"},
	{[]string{"cube", "box", "rotate", "rotation"}, "cube"},
}
